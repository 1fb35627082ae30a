package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach a
// log record. The HTTP middleware redacts them when dumping request headers
// and the masq layer below redacts attrs with the same names.
var SensitiveHeaders = map[string]bool{
	"authorization":        true,
	"proxy-authorization":  true,
	"x-api-key":            true,
	"cookie":               true,
	"set-cookie":           true,
	"x-amz-security-token": true,
}

// secretFields are attr names redacted wherever they appear. The store
// settings (dsn, S3 keys) are the ones the roster actually carries.
var secretFields = []string{
	"password", "secret", "token",
	"dsn", "access_key_id", "secret_access_key",
}

var secretPrefixes = []string{"secret_", "api_key"}

// secretValues catches credentials inside otherwise harmless strings, such
// as an error message that quotes a connection URL.
var secretValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; segments of 10+ chars so version strings do not match.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// api_key=..., apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// URLs with a password, e.g. postgres://roster:hunter2@db:5432/roster.
	regexp.MustCompile(`[a-z][a-z0-9+.\-]*://[^:/@\s]+:[^@\s]+@`),
}

// newRedactAttr builds the masq ReplaceAttr used by every handler New makes.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(secretFields)+len(secretPrefixes)+len(secretValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
