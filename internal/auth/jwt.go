package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ExtractBearer extracts the bearer token from the Authorization header.
func ExtractBearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingAuthorization
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMalformedAuthorization
	}
	return parts[1], nil
}

// JWTAuthorizer resolves actors from HS256 tokens issued by the gateway.
// It verifies the shared-secret signature only; account lifecycle and
// credential checks happen upstream.
type JWTAuthorizer struct {
	secret []byte
}

// NewJWTAuthorizer creates an authorizer for the given shared secret.
func NewJWTAuthorizer(secret []byte) *JWTAuthorizer {
	return &JWTAuthorizer{secret: secret}
}

// Authenticate parses the bearer token and returns the caller identity
// (subject claim) with its granted roles ("roles" claim).
func (a *JWTAuthorizer) Authenticate(r *http.Request) (*Actor, error) {
	raw, err := ExtractBearer(r)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrMissingSubject
	}

	actor := &Actor{ID: sub}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, rr := range rawRoles {
			if s, ok := rr.(string); ok {
				actor.Roles = append(actor.Roles, s)
			}
		}
	}
	return actor, nil
}
