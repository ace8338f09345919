package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

// sensitiveHeaders is the set of header names (lowercase) that must be
// redacted before logging.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

const redacted = "[REDACTED]"

// RedactHeaders returns the headers as a "headers" log group with keys in
// sorted order. Sensitive headers are replaced with "[REDACTED]" and
// multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, key := range keys {
		val := redacted
		if !sensitiveHeaders[strings.ToLower(key)] {
			val = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return slog.Group("headers", attrs...)
}
