package models

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type SuppliersRepository struct {
	db *gorm.DB
}

func NewSuppliersRepository(db *gorm.DB) *SuppliersRepository {
	return &SuppliersRepository{db: db}
}

func (r *SuppliersRepository) FetchSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error; err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("fetching suppliers")
		return []Supplier{}, fmt.Errorf("%w: suppliers: %w", ErrFetchFailed, err)
	}
	if suppliers == nil {
		suppliers = []Supplier{}
	}
	return suppliers, nil
}

func (r *SuppliersRepository) InsertSupplier(ctx context.Context, supplier *Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(supplier).Error
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("supplier", supplier.Name).Msg("inserting supplier")
		return insertError(err)
	}
	return nil
}
