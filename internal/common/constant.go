// Package common contains shared constants and sentinel errors used across
// Delegacia API components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on protected routes.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only accepted authorization scheme, including the
// trailing space that separates it from the token.
const BearerScheme = "Bearer "
