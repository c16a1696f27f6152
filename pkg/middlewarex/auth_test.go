package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/middlewarex"
)

var testSecret = []byte("test-secret") //nolint:gochecknoglobals

const (
	userSubject  = "0b7c0e8e-2f7d-4d43-9a57-6c3f1c1c9f10"
	adminSubject = "5f0c6f1e-8a43-4b7e-9d8e-0c1f2a3b4c5d"
)

func signToken(t *testing.T, secret []byte, method jwt.SigningMethod, claims middlewarex.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func claimsFor(subject, role string, expiresIn time.Duration) middlewarex.Claims {
	return middlewarex.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Role: role,
	}
}

func TestAuth(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		header     string
		statusCode int
		code       string
		userID     contextx.UserID
		role       contextx.UserRole
	}{
		{
			name:       "Valid user token",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor(userSubject, "", time.Hour)),
			statusCode: http.StatusOK,
			userID:     contextx.UserID(uuid.MustParse(userSubject)),
			role:       contextx.RoleUser,
		},
		{
			name:       "Valid admin token",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor(adminSubject, "admin", time.Hour)),
			statusCode: http.StatusOK,
			userID:     contextx.UserID(uuid.MustParse(adminSubject)),
			role:       contextx.RoleAdmin,
		},
		{
			name:       "Missing header",
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenInvalid",
		},
		{
			name:       "Expired token",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor(userSubject, "", -time.Minute)),
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenExpired",
		},
		{
			name:       "Wrong secret",
			header:     "Bearer " + signToken(t, []byte("other"), jwt.SigningMethodHS256, claimsFor(userSubject, "", time.Hour)),
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenInvalid",
		},
		{
			name:       "Wrong algorithm",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS512, claimsFor(userSubject, "", time.Hour)),
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenInvalid",
		},
		{
			name:       "Subject is not a UUID",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor("user-1", "", time.Hour)),
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenInvalid",
		},
		{
			name:       "Empty subject",
			header:     "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor("", "", time.Hour)),
			statusCode: http.StatusUnauthorized,
			code:       "AccessTokenInvalid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				gotUserID contextx.UserID
				gotRole   contextx.UserRole
			)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = contextx.UserIDFromContext(r.Context())
				gotRole, _ = contextx.UserRoleFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodPost, "/roulette/x/spin", http.NoBody)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()

			middlewarex.Auth(testSecret)(next).ServeHTTP(w, r)

			rq.Equal(tc.statusCode, w.Code)

			if tc.code != "" {
				rq.Contains(w.Body.String(), `"code":"`+tc.code+`"`)
				rq.Contains(w.Body.String(), `"success":false`)

				return
			}

			rq.Equal(tc.userID, gotUserID)
			rq.Equal(tc.role, gotRole)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	rq := require.New(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := middlewarex.Auth(testSecret)(middlewarex.AdminOnly(next))

	for role, status := range map[string]int{
		"admin": http.StatusNoContent,
		"":      http.StatusForbidden,
		"root":  http.StatusForbidden,
	} {
		r := httptest.NewRequest(http.MethodDelete, "/roulette/x", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, claimsFor(userSubject, role, time.Hour)))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		rq.Equal(status, w.Code, role)
	}
}
