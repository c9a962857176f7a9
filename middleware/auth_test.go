package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/emlakkit/handlers"
	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/services"
)

// fakeAuthService, middleware testi için — sadece ValidateSession önemli.
// "valid-token" dışındaki her token unauthorized düşer.
type fakeAuthService struct{}

func (f *fakeAuthService) Login(context.Context, *models.LoginRequest) (*models.Admin, string, error) {
	return nil, "", fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
}

func (f *fakeAuthService) ValidateSession(_ context.Context, token string) (*models.SessionIdentity, error) {
	if token == "valid-token" {
		return &models.SessionIdentity{
			AdminID:     "adm-1",
			Email:       "admin@emlakkit.app",
			DisplayName: "Test Admin",
		}, nil
	}
	return nil, fmt.Errorf("%w: invalid session", pkg.ErrUnauthorized)
}

func (f *fakeAuthService) CreateAdmin(context.Context, *models.CreateAdminRequest) (*models.Admin, error) {
	return nil, fmt.Errorf("not implemented")
}

var _ services.AuthService = (*fakeAuthService)(nil)

// newProtectedHandler, middleware arkasına context'teki kimliği yazan
// basit bir handler koyar.
func newProtectedHandler(t *testing.T, reached *bool) http.Handler {
	t.Helper()
	mw := NewAuthMiddleware(&fakeAuthService{})
	return mw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		identity, ok := r.Context().Value(handlers.AdminContextKey).(*models.SessionIdentity)
		require.True(t, ok, "identity must be in context")
		fmt.Fprint(w, identity.AdminID)
	}))
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	reached := false
	handler := newProtectedHandler(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached, "handler must not run without a session")
}

func TestAuthMiddleware_InvalidCookie(t *testing.T) {
	reached := false
	handler := newProtectedHandler(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookieName, Value: "forged-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

// Yanlış isimli cookie = cookie yok.
func TestAuthMiddleware_WrongCookieName(t *testing.T) {
	reached := false
	handler := newProtectedHandler(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "valid-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	reached := false
	handler := newProtectedHandler(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, "adm-1", rec.Body.String())
}
