// Package auth defines the authentication contracts shared by the token
// service, the access gate middleware, and the identity service, plus the
// composed configuration for the whole subsystem.
package auth

// TokenValidator validates a token string and returns the parsed claims.
// The access gate depends on this interface rather than a specific token
// implementation.
//
// The returned value can be any type (typically the service's claims struct).
// It is stored in request context via authctx.Set and retrieved with
// authctx.Get[T].
type TokenValidator interface {
	ValidateToken(token string) (any, error)
}

// TokenValidatorFunc adapts an ordinary function to the TokenValidator interface.
type TokenValidatorFunc func(token string) (any, error)

// ValidateToken implements TokenValidator.
func (f TokenValidatorFunc) ValidateToken(token string) (any, error) {
	return f(token)
}

// TokenGenerator generates a signed token from claims.
// Services use this to issue tokens without depending on a specific
// signing implementation.
type TokenGenerator interface {
	GenerateToken(claims any) (string, error)
}

// TokenGeneratorFunc adapts an ordinary function to the TokenGenerator interface.
type TokenGeneratorFunc func(claims any) (string, error)

// GenerateToken implements TokenGenerator.
func (f TokenGeneratorFunc) GenerateToken(claims any) (string, error) {
	return f(claims)
}

// NewValidator creates a TokenValidator from a validation function.
// This is a convenience wrapper for TokenValidatorFunc, useful for bridging
// typed services like jwt.Service[T]:
//
//	validator := auth.NewValidator(jwtSvc.ValidatorFunc())
func NewValidator(fn func(string) (any, error)) TokenValidator {
	return TokenValidatorFunc(fn)
}

// NewGenerator creates a TokenGenerator from a signing function, the issuing
// counterpart to NewValidator:
//
//	issuer := auth.NewGenerator(jwtSvc.GeneratorFunc())
func NewGenerator(fn func(claims any) (string, error)) TokenGenerator {
	return TokenGeneratorFunc(fn)
}
