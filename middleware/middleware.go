package middleware

import (
	"context"
	"errors"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/codebase/interfaces"
)

// Middleware impl
type Middleware struct {
	tokenValidator interfaces.TokenValidator
}

// NewMiddleware create new middleware instance
func NewMiddleware(tokenValidator interfaces.TokenValidator) *Middleware {
	return NewMiddlewareWithOption(SetTokenValidator(tokenValidator))
}

// NewMiddlewareWithOption create new middleware instance with option
func NewMiddlewareWithOption(opts ...OptionFunc) *Middleware {
	mw := &Middleware{
		tokenValidator: &defaultMiddleware{},
	}
	for _, opt := range opts {
		opt(mw)
	}

	return mw
}

// OptionFunc type
type OptionFunc func(*Middleware)

// SetTokenValidator option func
func SetTokenValidator(tokenValidator interfaces.TokenValidator) OptionFunc {
	return func(mw *Middleware) {
		if tokenValidator != nil {
			mw.tokenValidator = tokenValidator
		}
	}
}

type defaultMiddleware struct{}

func (defaultMiddleware) ValidateToken(ctx context.Context, token string) (*candishared.TokenClaim, error) {
	return nil, errors.New("organizer token is not supported")
}
