package auth

import "errors"

var (
	// ErrInvalidCredentials indicates the password did not match the
	// stored hash. Handlers must collapse it with the store's not-found
	// error into one generic response to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedToken indicates a token that is not structurally a
	// three-segment compact JWT or whose payload cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")

	// ErrExpiredToken indicates a structurally valid token whose exp
	// claim is in the past.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidToken indicates a token that failed cryptographic
	// verification (bad signature, wrong algorithm, missing claims).
	ErrInvalidToken = errors.New("invalid token")

	// ErrInsufficientAccess indicates an authenticated identity whose
	// access level does not meet a route's minimum tier.
	ErrInsufficientAccess = errors.New("insufficient access")
)
