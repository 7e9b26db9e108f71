package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_lingua_path/internal/config"
	"go_lingua_path/internal/model"
	"go_lingua_path/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, authEnabled bool) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
		Auth:        config.AuthConfig{Enabled: authEnabled},
		JWT:         config.JWTConfig{SecretKey: testSecret},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		Progression: config.ProgressionConfig{AtomicSubmit: true},
	}

	db, err := repository.NewDB(cfg.Database, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	srv := httptest.NewServer(newRouter(cfg, db, logger))
	t.Cleanup(srv.Close)
	return srv
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body model.APIErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestRouter_Authentication(t *testing.T) {
	languageQuery := "/api/v1/language-progress?languageId=" + uuid.NewString()

	signed := func(t *testing.T, sub string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
		s, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name        string
		authEnabled bool
		setHeaders  func(t *testing.T, req *http.Request)
		wantStatus  int
		wantCode    string
	}{
		{
			name:        "jwt - missing token",
			authEnabled: true,
			setHeaders:  func(t *testing.T, req *http.Request) {},
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
		},
		{
			name:        "jwt - dev header is ignored",
			authEnabled: true,
			setHeaders: func(t *testing.T, req *http.Request) {
				req.Header.Set("X-Learner-ID", uuid.NewString())
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:        "jwt - valid token reaches the service",
			authEnabled: true,
			setHeaders: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signed(t, uuid.NewString()))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "LEARNER_NOT_FOUND",
		},
		{
			name:        "dev - header reaches the service",
			authEnabled: false,
			setHeaders: func(t *testing.T, req *http.Request) {
				req.Header.Set("X-Learner-ID", uuid.NewString())
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "LEARNER_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, tc.authEnabled)
			req, err := http.NewRequest(http.MethodGet, srv.URL+languageQuery, nil)
			require.NoError(t, err)
			tc.setHeaders(t, req)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, errorCode(t, resp))
		})
	}
}
