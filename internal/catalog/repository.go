package catalog

import (
	"context"
	"errors"

	"github.com/commercekit/storefront/database"
)

// ErrNotFound reports that no product matched the lookup.
var ErrNotFound = errors.New("catalog: product not found")

// Repository is the persistence boundary for products.
type Repository interface {
	// List returns products, optionally filtered by category.
	// A nil categoryID returns the full inventory.
	List(ctx context.Context, categoryID *int64) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product *Product) error
	// Update replaces the stored product and reports ErrNotFound if no
	// row has that ID.
	Update(ctx context.Context, product *Product) error
	// Delete removes the product and reports ErrNotFound if no row had
	// that ID.
	Delete(ctx context.Context, id int64) error
}

type gormRepository struct {
	db *database.DB
}

// NewRepository creates a GORM-backed product repository.
func NewRepository(db *database.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context, categoryID *int64) ([]Product, error) {
	query := r.db.WithContext(ctx).Order("id")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *gormRepository) Create(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *gormRepository) Update(ctx context.Context, product *Product) error {
	// Select forces zero values (e.g. stock 0) to be written as well.
	result := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "stock", "category_id").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
