// Package middleware holds the inbound HTTP pipeline of the roster server.
//
// Stack assembles it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext
//
// Every stage is a plain func(http.Handler) http.Handler, so single stages
// can be composed with Chain in tests.
package middleware
