package models

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// FetchProducts returns every product joined with its supplier's name.
// On failure the error is logged and an empty slice is returned alongside it.
func (r *ProductsRepository) FetchProducts(ctx context.Context) ([]ProductListing, error) {
	var products []ProductListing
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.id, products.name, products.brand, products.price, products.category, " +
			"products.description, suppliers.name AS supplier_name").
		Joins("INNER JOIN suppliers ON products.supplier_id = suppliers.id").
		Order("products.id").
		Scan(&products).Error
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("fetching products")
		return []ProductListing{}, fmt.Errorf("%w: products: %w", ErrFetchFailed, err)
	}
	if products == nil {
		products = []ProductListing{}
	}
	return products, nil
}

// InsertProduct stores a new product in its own transaction, rolling back on failure.
// Whether SupplierID exists is left to the database's foreign key.
func (r *ProductsRepository) InsertProduct(ctx context.Context, product *Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(product).Error
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("product", product.Name).Msg("inserting product")
		return insertError(err)
	}
	return nil
}
