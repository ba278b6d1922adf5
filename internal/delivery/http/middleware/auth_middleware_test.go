package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	mockSvc "inventory/internal/mocks/service"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccounts scripts the account lookup the middleware performs after
// extracting a token subject.
type stubAccounts struct {
	account *entity.Account
	err     error

	lookups []string
}

func (s *stubAccounts) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	s.lookups = append(s.lookups, username)

	return s.account, s.err
}

func (s *stubAccounts) Signup(_ context.Context, _ *usecase.SignupInput) (*usecase.SignupOutput, error) {
	return nil, nil
}

func (s *stubAccounts) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (s *stubAccounts) ListAccounts(_ context.Context) ([]*usecase.AccountSummary, error) {
	return nil, nil
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate_NoHeaderPassesThrough(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc, &stubAccounts{}, discardLogger())

	c, _ := newAuthTestContext("")

	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, deliverycontext.GetPrincipal(c))
	tokenSvc.AssertNotCalled(t, "ExtractUsername")
}

func TestAuthMiddleware_Authenticate_NonBearerHeaderPassesThrough(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc, &stubAccounts{}, discardLogger())

	c, _ := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Nil(t, deliverycontext.GetPrincipal(c))
}

func TestAuthMiddleware_Authenticate_InvalidTokenPassesThroughAnonymously(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ExtractUsername", "garbage").Return("", domainerrors.ErrTokenInvalid)
	accounts := &stubAccounts{}
	m := NewAuthMiddleware(tokenSvc, accounts, discardLogger())

	c, _ := newAuthTestContext("Bearer garbage")

	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, deliverycontext.GetPrincipal(c))
	assert.Empty(t, accounts.lookups)
}

func TestAuthMiddleware_Authenticate_UnknownAccountPassesThroughAnonymously(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ExtractUsername", "orphan.token").Return("ghost", nil)
	accounts := &stubAccounts{err: domainerrors.ErrAccountUnknown}
	m := NewAuthMiddleware(tokenSvc, accounts, discardLogger())

	c, _ := newAuthTestContext("Bearer orphan.token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Nil(t, deliverycontext.GetPrincipal(c))
	assert.Equal(t, []string{"ghost"}, accounts.lookups)
	tokenSvc.AssertNotCalled(t, "Validate")
}

func TestAuthMiddleware_Authenticate_FailedValidationPassesThroughAnonymously(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ExtractUsername", "stale.token").Return("alice", nil)
	tokenSvc.On("Validate", "stale.token", "alice").Return(false)
	accounts := &stubAccounts{account: &entity.Account{ID: 7, Username: "alice", Role: "USER"}}
	m := NewAuthMiddleware(tokenSvc, accounts, discardLogger())

	c, _ := newAuthTestContext("Bearer stale.token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Nil(t, deliverycontext.GetPrincipal(c))
}

func TestAuthMiddleware_Authenticate_ValidTokenInstallsPrincipal(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("ExtractUsername", "good.token").Return("alice", nil)
	tokenSvc.On("Validate", "good.token", "alice").Return(true)
	accounts := &stubAccounts{account: &entity.Account{ID: 7, Username: "alice", Role: "USER"}}
	m := NewAuthMiddleware(tokenSvc, accounts, discardLogger())

	c, _ := newAuthTestContext("Bearer good.token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)

	principal := deliverycontext.GetPrincipal(c)
	require.NotNil(t, principal)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, int64(7), principal.UserID)
	assert.True(t, principal.HasAuthority("ROLE_USER"))

	// The principal must also reach the request's context for the usecases.
	assert.NotNil(t, deliverycontext.PrincipalFromContext(c.Request().Context()))
}

func TestAuthMiddleware_RequireAuth_RejectsAnonymous(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc, &stubAccounts{}, discardLogger())

	c, _ := newAuthTestContext("")

	err := m.RequireAuth(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_RequireAuth_AllowsAuthenticated(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc, &stubAccounts{}, discardLogger())

	c, _ := newAuthTestContext("")
	deliverycontext.SetPrincipal(c, &entity.Principal{UserID: 7, Username: "alice"})

	called := false
	err := m.RequireAuth(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc, &stubAccounts{}, discardLogger())

	c, _ := newAuthTestContext("")
	deliverycontext.SetPrincipal(c, &entity.Principal{
		UserID:      7,
		Username:    "alice",
		Authorities: []string{"ROLE_USER"},
	})

	err := m.RequireRole("ADMIN")(func(c echo.Context) error { return nil })(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = m.RequireRole("USER")(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
}
