package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/tracer"
)

const (
	// AudienceOrganizer audience of organizer token
	AudienceOrganizer = "organizer"
	issuer            = "meetup"
)

var (
	// ErrTokenExpired token expired
	ErrTokenExpired = errors.New("token has been expired")
	// ErrTokenFormat invalid token
	ErrTokenFormat = errors.New("invalid token format")
)

// JWT organizer token issuer and validator, HS256
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT constructor
func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Generate organizer token bound to meeting id
func (r *JWT) Generate(ctx context.Context, meetingID string) (tokenString string, err error) {
	trace := tracer.StartTrace(ctx, "OrganizerToken:Generate")
	defer func() { trace.SetError(err); trace.Finish() }()

	now := r.now()
	claims := candishared.TokenClaim{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Issuer:    issuer,
			Audience:  AudienceOrganizer,
			Subject:   meetingID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(r.ttl).Unix(),
		},
		Role: AudienceOrganizer,
	}
	trace.SetTag("jti", claims.Id)

	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(r.secret)
}

// ValidateToken parse and validate organizer token
func (r *JWT) ValidateToken(ctx context.Context, tokenString string) (claim *candishared.TokenClaim, err error) {
	trace := tracer.StartTrace(ctx, "OrganizerToken:ValidateToken")
	defer func() { trace.SetError(err); trace.Finish() }()

	var tokenClaim candishared.TokenClaim
	parser := &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	tokenParse, err := parser.ParseWithClaims(tokenString, &tokenClaim, func(*jwt.Token) (interface{}, error) {
		return r.secret, nil
	})

	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenFormat
	}
	if err != nil || !tokenParse.Valid {
		return nil, ErrTokenFormat
	}

	if !tokenClaim.VerifyAudience(AudienceOrganizer, true) || tokenClaim.Subject == "" {
		return nil, ErrTokenFormat
	}
	return &tokenClaim, nil
}
