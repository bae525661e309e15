package identity

import (
	"context"
	"errors"

	"github.com/commercekit/storefront/database"
)

// Repository errors. The service layer translates these into client-facing
// responses; handlers never see them directly.
var (
	// ErrNotFound reports that no user matched the lookup.
	ErrNotFound = errors.New("identity: user not found")
	// ErrEmailTaken reports a unique-index violation on the email column.
	// The index is the authority on uniqueness: concurrent registrations
	// with the same email race past any pre-check, but only one insert wins.
	ErrEmailTaken = errors.New("identity: email already registered")
)

// Repository is the persistence boundary for user accounts.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type gormRepository struct {
	db *database.DB
}

// NewRepository creates a GORM-backed user repository.
func NewRepository(db *database.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, user *User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
