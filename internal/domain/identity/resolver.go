// Package identity определяет контракт разрешения личности вызывающего.
// Движок никогда не читает роли из заголовков запроса напрямую:
// транспортный слой обязан пройти через Resolver.
package identity

import (
	"context"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
)

// Caller is a resolved platform identity.
type Caller struct {
	UserID shared.UserID
	Role   shared.Role
}

// IsBypass reports whether the caller may skip the retake cooldown.
func (c Caller) IsBypass() bool {
	return c.Role.BypassesCooldown()
}

// Resolver resolves raw transport credentials to a Caller. Implementations
// live in the infrastructure layer; the domain only sees the capability.
type Resolver interface {
	// Resolve maps a token to a caller. Returns shared.ErrUnauthorized
	// (wrapped in a DomainError) when the token does not map to anyone.
	Resolve(ctx context.Context, token string) (Caller, error)
}
