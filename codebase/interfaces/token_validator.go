package interfaces

import (
	"context"

	"github.com/golangid/meetup/candishared"
)

// TokenValidator abstract interface for jwt validator
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*candishared.TokenClaim, error)
}

// TokenIssuer abstract interface for jwt generator, token bound to one subject
type TokenIssuer interface {
	Generate(ctx context.Context, subject string) (string, error)
	TokenValidator
}
