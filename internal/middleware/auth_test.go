package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_lingua_path/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// echoLearner responds with the learner id found in the context.
var echoLearner = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, err := GetLearnerIDFromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(id.String()))
})

func TestJWTAuthMiddleware(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": learnerID.String()}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "lower case scheme",
			header:     "bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": learnerID.String()}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": learnerID.String()}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
				"sub": learnerID.String(),
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "unsigned token",
			header:     "Bearer " + sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": learnerID.String()}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "missing subject",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"name": "x"}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "subject is not a uuid",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "learner-1"}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			JWTAuthMiddleware(secret)(echoLearner).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, learnerID.String(), rr.Body.String())
				return
			}
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestDevLearnerContextMiddleware(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid header", header: learnerID.String(), wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "invalid header", header: "abc", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Learner-ID", tc.header)
			}
			rr := httptest.NewRecorder()

			DevLearnerContextMiddleware(echoLearner).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, learnerID.String(), rr.Body.String())
			}
		})
	}
}

func TestGetLearnerIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetLearnerIDFromContext(req.Context())

	assert.ErrorIs(t, err, model.ErrUnauthorized)
}
