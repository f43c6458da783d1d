package auth

import "errors"

var (
	// ErrMissingAuthorization is returned when the Authorization header is absent.
	ErrMissingAuthorization = errors.New("missing Authorization header")

	// ErrMalformedAuthorization is returned when the header is not "Bearer <token>".
	ErrMalformedAuthorization = errors.New("invalid Authorization header format, expected 'Bearer <token>'")

	// ErrInvalidToken is returned when the bearer token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject is returned when the token carries no caller identifier.
	ErrMissingSubject = errors.New("token subject is empty")
)
