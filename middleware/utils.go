package middleware

import (
	"errors"
	"strings"
)

const (
	// BEARER constanta
	BEARER = "BEARER"
)

func extractAuthType(prefix, authorization string) (string, error) {

	authValues := strings.Split(authorization, " ")
	if len(authValues) == 2 && strings.ToUpper(authValues[0]) == prefix && authValues[1] != "" {
		return authValues[1], nil
	}

	return "", errors.New("Invalid authorization")
}
