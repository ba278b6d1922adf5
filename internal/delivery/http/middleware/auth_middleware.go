package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts usecase.AccountUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accounts usecase.AccountUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accounts: accounts, logger: logger}
}

// Authenticate inspects the Authorization header and, when it carries a valid
// bearer token, installs the authenticated principal on the request. Requests
// without a usable token continue anonymously; route policy decides whether
// anonymous access is acceptable.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		username, err := m.tokenSvc.ExtractUsername(tokenString)
		if err != nil || username == "" {
			m.logger.Warn("Rejected bearer token", slog.String("path", c.Request().URL.Path))

			return next(c)
		}

		account, err := m.accounts.FindByUsername(c.Request().Context(), username)
		if err != nil {
			m.logger.Warn("Rejected bearer token", slog.String("path", c.Request().URL.Path))

			return next(c)
		}

		if !m.tokenSvc.Validate(tokenString, account.Username) {
			m.logger.Warn("Rejected bearer token", slog.String("path", c.Request().URL.Path))

			return next(c)
		}

		deliverycontext.SetPrincipal(c, entity.NewPrincipal(account))

		return next(c)
	}
}

// RequireAuth rejects anonymous requests. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetPrincipal(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal for a role
// authority. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrUnauthenticated
			}

			if !principal.HasAuthority(entity.AuthorityPrefix + requiredRole) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
