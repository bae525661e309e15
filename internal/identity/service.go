package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/commercekit/storefront/auth"
	"github.com/commercekit/storefront/auth/password"
	apperrors "github.com/commercekit/storefront/errors"
	"github.com/commercekit/storefront/logger"
	"github.com/commercekit/storefront/observability"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,max=72"`
	Address     string `json:"address" validate:"omitempty,max=512"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
}

// Service implements registration and login on top of the repository,
// the credential hasher, and the token service.
type Service struct {
	repo    Repository
	hasher  password.Hasher
	tokens  auth.TokenGenerator
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewService creates an identity service. metrics may be nil.
func NewService(repo Repository, hasher password.Hasher, tokens auth.TokenGenerator, metrics *observability.Metrics, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		metrics: metrics,
		log:     log.WithComponent("identity"),
	}
}

// Register creates a new account with a hashed credential. A taken email
// returns a conflict error; the plaintext password is never stored or logged.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	ctx, span := observability.StartSpan(ctx, "identity.register")
	defer span.End()

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, apperrors.Internal(fmt.Errorf("hash credential: %w", err))
	}

	user := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		PhoneNumber:  in.PhoneNumber,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.recordAuth(ctx, "register", "failure")
			return nil, apperrors.AlreadyExists("Email already in use.")
		}
		observability.SetSpanError(ctx, err)
		s.recordAuth(ctx, "register", "failure")
		return nil, apperrors.DatabaseError(err)
	}

	s.recordAuth(ctx, "register", "success")
	s.log.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

// Login verifies the credential for the given email and issues an access
// token. Unknown email and wrong password produce the same error so the
// response does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, email, plaintext string) (string, *User, error) {
	ctx, span := observability.StartSpan(ctx, "identity.login")
	defer span.End()

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.recordAuth(ctx, "login", "failure")
			return "", nil, invalidCredentials()
		}
		observability.SetSpanError(ctx, err)
		return "", nil, apperrors.DatabaseError(err)
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		// A stored hash the verifier cannot read is server corruption,
		// not a client mistake.
		observability.SetSpanError(ctx, err)
		s.log.Error("Stored credential hash is unreadable", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return "", nil, apperrors.Internal(err)
	}
	if !ok {
		s.recordAuth(ctx, "login", "failure")
		return "", nil, invalidCredentials()
	}

	token, err := s.tokens.GenerateToken(&AccessClaims{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		observability.SetSpanError(ctx, err)
		return "", nil, apperrors.Internal(err)
	}

	s.recordAuth(ctx, "login", "success")
	s.log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return token, user, nil
}

// GetByID returns the account with the given ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return users, nil
}

// invalidCredentials is the single response for both unknown email and
// wrong password.
func invalidCredentials() *apperrors.AppError {
	return apperrors.Unauthorized("Invalid credentials.")
}

func (s *Service) recordAuth(ctx context.Context, operation, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordAuthAttempt(ctx, operation, outcome)
	}
}
