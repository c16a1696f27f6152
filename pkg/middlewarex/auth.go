package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/reply"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

const bearerPrefix = "Bearer "

// Claims are issued by the account service. Subject holds the user UUID.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Auth verifies an HS256 bearer token and stores the caller identity in the
// request context.
func Auth(secret []byte) func(next http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				reply.Status(ctx, w, http.StatusUnauthorized, errcodes.AccessTokenInvalid, "Missing bearer token")

				return
			}

			var claims Claims

			_, err := parser.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), &claims, keyFunc)

			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				reply.Status(ctx, w, http.StatusUnauthorized, errcodes.AccessTokenExpired, "Access token expired")

				return
			case err != nil:
				logger(ctx).Warn("jwt.ParseWithClaims", logx.Error(err))
				reply.Status(ctx, w, http.StatusUnauthorized, errcodes.AccessTokenInvalid, "Invalid access token")

				return
			}

			subject, err := uuid.Parse(claims.Subject)
			if err != nil {
				reply.Status(ctx, w, http.StatusUnauthorized, errcodes.AccessTokenInvalid, "Invalid access token")

				return
			}

			role := contextx.RoleUser
			if claims.Role == contextx.RoleAdmin.String() {
				role = contextx.RoleAdmin
			}

			ctx = contextx.WithUserID(ctx, contextx.UserID(subject))
			ctx = contextx.WithUserRole(ctx, role)
			ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, claims.Subject)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly lets through callers authenticated with the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		role, err := contextx.UserRoleFromContext(ctx)
		if err != nil || role != contextx.RoleAdmin {
			reply.Status(ctx, w, http.StatusForbidden, errcodes.Forbidden, "Admin role required")

			return
		}

		next.ServeHTTP(w, r)
	})
}
