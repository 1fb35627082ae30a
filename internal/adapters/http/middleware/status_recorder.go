package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
// Recovery uses it to know whether a problem response can still be sent.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int64
	sent   bool
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only; net/http would warn on the rest.
func (s *statusRecorder) WriteHeader(code int) {
	if s.sent {
		return
	}
	s.status, s.sent = code, true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	s.sent = true
	n, err := s.ResponseWriter.Write(p)
	s.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
