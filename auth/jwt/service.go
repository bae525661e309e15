// Package jwt provides a generic JWT token service using Go generics.
//
// The service is parameterized by a custom claims type T, which must implement
// jwt.Claims (typically by embedding jwt.RegisteredClaims). This keeps the
// identity payload a project decision rather than a package one.
//
// Usage:
//
//	type MyClaims struct {
//	    jwt.RegisteredClaims
//	    UserID int64  `json:"user_id"`
//	    Email  string `json:"email"`
//	}
//
//	svc, err := jwt.NewService(&cfg, func() *MyClaims { return &MyClaims{} })
//	token, err := svc.GenerateAccess(&MyClaims{UserID: 1, Email: "a@x.com"})
//	claims, err := svc.Parse(token)
package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Parse failure kinds. Callers that surface authentication results to
// clients must collapse all of these into one unauthorized outcome; they
// exist as distinct values for logging and tests only.
var (
	// ErrTokenMalformed reports a token that is not a parseable JWT.
	ErrTokenMalformed = errors.New("jwt: malformed token")
	// ErrTokenExpired reports a token past its expiry with an otherwise
	// valid signature.
	ErrTokenExpired = errors.New("jwt: token expired")
	// ErrTokenInvalid reports a signature mismatch or any other tampering
	// with the payload or timestamps.
	ErrTokenInvalid = errors.New("jwt: invalid token")
)

// Service provides JWT token generation and parsing for custom claims type T.
// T must implement jwt.Claims (e.g., by embedding jwt.RegisteredClaims).
// A Service is immutable after construction and safe for concurrent use.
type Service[T gojwt.Claims] struct {
	cfg      Config
	newEmpty func() T
}

// NewService creates a new JWT service.
// The newEmpty function returns a zero-value instance of T for parsing.
// An empty signing secret fails here so misconfiguration is caught at
// startup rather than on the first request.
func NewService[T gojwt.Claims](cfg *Config, newEmpty func() T) (*Service[T], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service[T]{cfg: *cfg, newEmpty: newEmpty}, nil
}

// TTL returns the configured token lifetime.
func (s *Service[T]) TTL() time.Duration {
	return s.cfg.TTL
}

// Generate creates a signed JWT token from the given claims as-is.
// Most callers want GenerateAccess, which stamps the time claims first.
func (s *Service[T]) Generate(claims T) (string, error) {
	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString(s.cfg.key())
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// GenerateAccess creates a signed access token with standard time claims:
// issued-at is now and expiry is now + TTL.
func (s *Service[T]) GenerateAccess(claims T) (string, error) {
	s.prepareClaims(claims, s.cfg.TTL)
	return s.Generate(claims)
}

// Parse validates and parses a JWT token string into claims of type T.
// It verifies the signing method, signature, and expiry. Failures are
// classified as ErrTokenMalformed, ErrTokenExpired, or ErrTokenInvalid.
func (s *Service[T]) Parse(tokenString string) (T, error) {
	var zero T
	claims := s.newEmpty()
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return zero, classifyParseError(err)
	}
	if !token.Valid {
		return zero, ErrTokenInvalid
	}
	parsed, ok := token.Claims.(T)
	if !ok {
		return zero, ErrTokenInvalid
	}
	return parsed, nil
}

// ValidatorFunc returns a function that validates a token string and returns
// the parsed claims as any. This bridges the typed JWT service with generic
// middleware that doesn't know about the specific claims type.
//
// Usage with middleware:
//
//	engine.Use(middleware.Auth(auth.NewValidator(svc.ValidatorFunc())))
func (s *Service[T]) ValidatorFunc() func(string) (any, error) {
	return func(token string) (any, error) {
		return s.Parse(token)
	}
}

// GeneratorFunc returns a function that signs claims supplied as any,
// bridging the typed service with generic issuers that don't know about
// the specific claims type. Claims of any other type are an error.
//
// Usage with the auth contracts:
//
//	issuer := auth.NewGenerator(svc.GeneratorFunc())
func (s *Service[T]) GeneratorFunc() func(any) (string, error) {
	return func(claims any) (string, error) {
		typed, ok := claims.(T)
		if !ok {
			return "", fmt.Errorf("jwt: unexpected claims type %T", claims)
		}
		return s.GenerateAccess(typed)
	}
}

// classifyParseError maps golang-jwt parse failures onto the package's
// sentinel errors. Expiry is checked before signature classification because
// golang-jwt wraps both under claim validation.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service[T]) keyFunc(token *gojwt.Token) (interface{}, error) {
	expected := s.cfg.signingMethod()
	if token.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("jwt: unexpected signing method: %s", token.Method.Alg())
	}
	return s.cfg.key(), nil
}

// parserOptions returns jwt.ParserOption based on config.
func (s *Service[T]) parserOptions() []gojwt.ParserOption {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}
	return opts
}

// prepareClaims sets standard time claims when the claims type supports it.
func (s *Service[T]) prepareClaims(claims T, ttl time.Duration) {
	now := time.Now()
	if setter, ok := any(claims).(interface {
		SetDefaults(time.Time, time.Duration, string)
	}); ok {
		setter.SetDefaults(now, ttl, s.cfg.Issuer)
	}
}
