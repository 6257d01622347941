package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingBearer = errors.New("authorization header carries no token")

// GenerateJWT signs payload as-is with HS256. exp and iat are always set by
// the server, overriding anything the payload carried.
func GenerateJWT(payload map[string]interface{}, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseJWT verifies signature and expiry and returns the decoded claims.
func ParseJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// BearerToken returns the second whitespace-separated field of an
// Authorization header value, e.g. the token in "Bearer <token>".
func BearerToken(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", ErrMissingBearer
	}
	return fields[1], nil
}
