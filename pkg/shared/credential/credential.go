package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher abstraction of one-way salted secret digest
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// BcryptHasher implementation of Hasher
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructor, cost outside bcrypt range fallback to bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash secret, every call produce different digest
func (b *BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret cannot empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify secret against digest, malformed digest is a mismatch
func (b *BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
