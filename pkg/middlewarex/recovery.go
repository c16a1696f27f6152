package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/reply"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

// Recovery turns a handler panic into the regular JSON error body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Status(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
