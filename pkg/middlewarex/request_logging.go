package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

// RequestLogging dumps the incoming request with its Authorization header
// stripped and the rest passed through the masker.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			redacted := r.Clone(ctx)
			redacted.Header.Del("Authorization")

			dump, err := httputil.DumpRequest(redacted, dumpBody)

			// DumpRequest drained the shared body and left a replayable copy on the clone.
			r.Body = redacted.Body

			if len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}
