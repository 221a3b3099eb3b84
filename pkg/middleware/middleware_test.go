package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/authenticating"
)

type fakeAuthenticator struct {
	authenticating.Authenticator
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	collector := &domain.Claims{UserID: 5, UserRoleID: RoleCollector}

	tests := []struct {
		name           string
		path           string
		header         string
		auth           fakeAuthenticator
		expectedStatus int
	}{
		{
			name:           "Rota pública",
			path:           "/healthcheck",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem header",
			path:           "/v1/collections/priorities",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Sem prefixo Bearer",
			path:           "/v1/collections/priorities",
			header:         "abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token expirado",
			path:           "/v1/collections/priorities",
			header:         "Bearer abc",
			auth:           fakeAuthenticator{err: authenticating.ErrExpiredToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token válido",
			path:           "/v1/collections/priorities",
			header:         "Bearer abc",
			auth:           fakeAuthenticator{claims: collector},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	handler := AuthMiddleware(fakeAuthenticator{claims: &domain.Claims{UserID: 5, UserRoleID: RoleCollector}})(
		AdminOrSupervisor()(okHandler()),
	)

	req := httptest.NewRequest(http.MethodPut, "/v1/collections/weights", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	handler = AuthMiddleware(fakeAuthenticator{claims: &domain.Claims{UserID: 1, UserRoleID: RoleSupervisor}})(
		AdminOrSupervisor()(okHandler()),
	)
	rec = httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRoles_SemCredenciais(t *testing.T) {
	rec := httptest.NewRecorder()

	AllRoles()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/collections/aging", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_InformaPerfisAceitos(t *testing.T) {
	handler := AuthMiddleware(fakeAuthenticator{claims: &domain.Claims{UserID: 9, UserRoleID: RoleCollector}})(
		AdminOnly()(okHandler()),
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/users", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "collector")
	assert.Contains(t, rec.Body.String(), `"required_roles":["admin"]`)
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "admin", RoleName(RoleAdmin))
	assert.Equal(t, "supervisor", RoleName(RoleSupervisor))
	assert.Equal(t, "collector", RoleName(RoleCollector))
	assert.Equal(t, "unknown", RoleName(42))
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/collections/priorities", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Correlation-ID", rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/v1/collections/priorities", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCors_QualquerOrigem(t *testing.T) {
	handler := Cors([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "https://painel.cobranca.example")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://painel.cobranca.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("falha inesperada"))
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/collections/aging", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
