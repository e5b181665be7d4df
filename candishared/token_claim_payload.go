package candishared

import "github.com/golang-jwt/jwt"

// TokenClaim organizer token claim, Subject hold the meeting id
type TokenClaim struct {
	jwt.StandardClaims
	Role string `json:"role"`
}
