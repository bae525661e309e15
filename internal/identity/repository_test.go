package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/commercekit/storefront/database"
	"github.com/commercekit/storefront/logger"
)

// testDB opens an in-memory SQLite database migrated with the User model.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := database.Config{
		Driver: "sqlite",
		DSN:    ":memory:",
		// A single connection keeps every query on the same in-memory database.
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxRetries:   1,
		LogLevel:     "silent",
	}
	db, err := database.New(context.Background(), cfg, logger.NewDefault("identity-test"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	user := &User{Name: "Ada", Email: "ada@example.com", PasswordHash: "$2a$10$stub"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Create() should assign an ID")
	}

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("FindByEmail() ID = %d, want %d", byEmail.ID, user.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Email != "ada@example.com" {
		t.Errorf("FindByID() Email = %q", byID.Email)
	}
}

func TestRepositoryNotFound(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByEmail(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRepositoryUniqueEmail(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	first := &User{Name: "Ada", Email: "ada@example.com", PasswordHash: "$2a$10$stub"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// The unique index rejects the second insert regardless of other fields.
	second := &User{Name: "Imposter", Email: "ada@example.com", PasswordHash: "$2a$10$other"}
	if err := repo.Create(ctx, second); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Create() error = %v, want ErrEmailTaken", err)
	}
}

func TestRepositoryList(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		if err := repo.Create(ctx, &User{Name: "User", Email: email, PasswordHash: "$2a$10$stub"}); err != nil {
			t.Fatalf("Create(%s) error = %v", email, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != len(emails) {
		t.Fatalf("List() returned %d users, want %d", len(users), len(emails))
	}
	for i, u := range users {
		if u.Email != emails[i] {
			t.Errorf("users[%d].Email = %q, want %q", i, u.Email, emails[i])
		}
	}
}
