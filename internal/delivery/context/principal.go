package context

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyPrincipal is the key for storing the authenticated principal in context.
	KeyPrincipal ContextKey = "principal"
)

// SetPrincipal stores the authenticated principal in echo.Context and in the
// request's context.Context so both handlers and usecases can read it.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)

	ctx := WithPrincipal(c.Request().Context(), principal)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetPrincipal extracts the authenticated principal from echo.Context.
// Returns nil when the request is anonymous.
func GetPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext extracts the principal from standard context.Context.
// Returns nil when the request is anonymous.
func PrincipalFromContext(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}
