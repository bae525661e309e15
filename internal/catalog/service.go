package catalog

import (
	"context"
	"errors"

	apperrors "github.com/commercekit/storefront/errors"
	"github.com/commercekit/storefront/logger"
	"github.com/commercekit/storefront/observability"
)

// Service implements the inventory operations on top of the repository.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates a catalog service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.WithComponent("catalog")}
}

// List returns products, optionally filtered by category.
func (s *Service) List(ctx context.Context, categoryID *int64) ([]Product, error) {
	products, err := s.repo.List(ctx, categoryID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return products, nil
}

// GetByID returns the product with the given ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return product, nil
}

// Create adds a new product to the inventory.
func (s *Service) Create(ctx context.Context, in ProductInput) (*Product, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.create")
	defer span.End()

	product := &Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		observability.SetSpanError(ctx, err)
		return nil, apperrors.DatabaseError(err)
	}

	s.log.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

// Update replaces the product with the given ID.
func (s *Service) Update(ctx context.Context, id int64, in ProductInput) (*Product, error) {
	ctx, span := observability.StartSpan(ctx, "catalog.update")
	defer span.End()

	product := &Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.NotFound("Product")
		}
		observability.SetSpanError(ctx, err)
		return nil, apperrors.DatabaseError(err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return updated, nil
}

// Delete removes the product with the given ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := observability.StartSpan(ctx, "catalog.delete")
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NotFound("Product")
		}
		observability.SetSpanError(ctx, err)
		return apperrors.DatabaseError(err)
	}

	s.log.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
