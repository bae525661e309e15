package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/commercekit/storefront/database"
	apperrors "github.com/commercekit/storefront/errors"
	"github.com/commercekit/storefront/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()

	cfg := database.Config{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxRetries:   1,
		LogLevel:     "silent",
	}
	db, err := database.New(context.Background(), cfg, logger.NewDefault("catalog-test"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AutoMigrate(&Product{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return NewService(NewRepository(db), logger.NewDefault("catalog-test"))
}

func seedProducts(t *testing.T, svc *Service) []Product {
	t.Helper()
	ctx := context.Background()

	inputs := []ProductInput{
		{Name: "Laptop", Description: "14-inch", Price: 999.99, Stock: 5, CategoryID: 1},
		{Name: "Keyboard", Description: "Mechanical", Price: 79.99, Stock: 50, CategoryID: 1},
		{Name: "Desk", Description: "Standing", Price: 399.00, Stock: 2, CategoryID: 2},
	}
	var out []Product
	for _, in := range inputs {
		p, err := svc.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", in.Name, err)
		}
		out = append(out, *p)
	}
	return out
}

// ============================================================
// List and lookup
// ============================================================

func TestListAll(t *testing.T) {
	svc := testService(t)
	seedProducts(t, svc)

	products, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(products) != 3 {
		t.Errorf("List() returned %d products, want 3", len(products))
	}
}

func TestListByCategory(t *testing.T) {
	svc := testService(t)
	seedProducts(t, svc)

	category := int64(1)
	products, err := svc.List(context.Background(), &category)
	if err != nil {
		t.Fatalf("List(category=1) error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("List(category=1) returned %d products, want 2", len(products))
	}
	for _, p := range products {
		if p.CategoryID != 1 {
			t.Errorf("product %q has CategoryID %d, want 1", p.Name, p.CategoryID)
		}
	}
}

func TestListEmptyCategory(t *testing.T) {
	svc := testService(t)
	seedProducts(t, svc)

	category := int64(99)
	products, err := svc.List(context.Background(), &category)
	if err != nil {
		t.Fatalf("List(category=99) error = %v", err)
	}
	if len(products) != 0 {
		t.Errorf("List(category=99) returned %d products, want 0", len(products))
	}
}

func TestGetByID(t *testing.T) {
	svc := testService(t)
	seeded := seedProducts(t, svc)

	product, err := svc.GetByID(context.Background(), seeded[0].ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if product.Name != "Laptop" {
		t.Errorf("product.Name = %q, want Laptop", product.Name)
	}

	_, err = svc.GetByID(context.Background(), 9999)
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 404 {
		t.Errorf("GetByID(missing) = %v, want 404 AppError", err)
	}
}

// ============================================================
// Mutations
// ============================================================

func TestUpdate(t *testing.T) {
	svc := testService(t)
	seeded := seedProducts(t, svc)
	ctx := context.Background()

	updated, err := svc.Update(ctx, seeded[1].ID, ProductInput{
		Name: "Keyboard TKL", Price: 89.99, Stock: 0, CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Keyboard TKL" {
		t.Errorf("updated.Name = %q", updated.Name)
	}
	// Zero stock must persist, not be skipped as a zero value.
	if updated.Stock != 0 {
		t.Errorf("updated.Stock = %d, want 0", updated.Stock)
	}

	_, err = svc.Update(ctx, 9999, ProductInput{Name: "Ghost", Price: 1})
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.HTTPStatus != 404 {
		t.Errorf("Update(missing) = %v, want 404 AppError", err)
	}
}

func TestDelete(t *testing.T) {
	svc := testService(t)
	seeded := seedProducts(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, seeded[2].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := svc.GetByID(ctx, seeded[2].ID)
	if appErr, ok := apperrors.AsAppError(err); !ok || appErr.HTTPStatus != 404 {
		t.Errorf("GetByID(deleted) = %v, want 404 AppError", err)
	}

	err = svc.Delete(ctx, seeded[2].ID)
	if appErr, ok := apperrors.AsAppError(err); !ok || appErr.HTTPStatus != 404 {
		t.Errorf("Delete(deleted) = %v, want 404 AppError", err)
	}
}

// ============================================================
// Repository sentinel
// ============================================================

func TestRepositoryNotFoundSentinel(t *testing.T) {
	svc := testService(t)

	_, err := svc.repo.FindByID(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}
