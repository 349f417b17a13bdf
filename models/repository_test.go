package models

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with foreign keys enforced.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&Supplier{}, &Product{}))
	return db
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *Supplier {
	t.Helper()
	s := &Supplier{Name: name, ContactInfo: name + "@example.com", Categories: "laptops, phones"}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestSuppliersRepository_FetchSuppliers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		repo := NewSuppliersRepository(setupTestDB(t))

		suppliers, err := repo.FetchSuppliers(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, suppliers)
		assert.Empty(t, suppliers)
	})

	t.Run("returns all rows", func(t *testing.T) {
		db := setupTestDB(t)
		seedSupplier(t, db, "Acme")
		seedSupplier(t, db, "Globex")
		repo := NewSuppliersRepository(db)

		suppliers, err := repo.FetchSuppliers(ctx)
		require.NoError(t, err)
		require.Len(t, suppliers, 2)
		assert.Equal(t, "Acme", suppliers[0].Name)
		assert.Equal(t, "Globex@example.com", suppliers[1].ContactInfo)
	})

	t.Run("query failure yields empty slice and error", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Migrator().DropTable(&Product{}, &Supplier{}))
		repo := NewSuppliersRepository(db)

		suppliers, err := repo.FetchSuppliers(ctx)
		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.NotNil(t, suppliers)
		assert.Empty(t, suppliers)
	})
}

func TestSuppliersRepository_InsertSupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSuppliersRepository(db)

	supplier := &Supplier{Name: "Initech", ContactInfo: "sales@initech.com", Categories: "printers"}
	require.NoError(t, repo.InsertSupplier(context.Background(), supplier))
	assert.NotZero(t, supplier.ID)

	var found Supplier
	require.NoError(t, db.First(&found, supplier.ID).Error)
	assert.Equal(t, "Initech", found.Name)
	assert.Equal(t, "printers", found.Categories)
}

func TestProductsRepository_FetchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		repo := NewProductsRepository(setupTestDB(t))

		products, err := repo.FetchProducts(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("joins supplier name", func(t *testing.T) {
		db := setupTestDB(t)
		acme := seedSupplier(t, db, "Acme")
		require.NoError(t, db.Create(&Product{
			Name:        "ThinkBook",
			Brand:       "Lenovo",
			Price:       decimal.RequireFromString("999.99"),
			Category:    "laptops",
			Description: "14 inch",
			SupplierID:  acme.ID,
		}).Error)
		repo := NewProductsRepository(db)

		products, err := repo.FetchProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "ThinkBook", products[0].Name)
		assert.Equal(t, "Lenovo", products[0].Brand)
		assert.Equal(t, "Acme", products[0].SupplierName)
		assert.True(t, decimal.RequireFromString("999.99").Equal(products[0].Price))
	})

	t.Run("query failure yields empty slice and error", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Migrator().DropTable(&Product{}))
		repo := NewProductsRepository(db)

		products, err := repo.FetchProducts(ctx)
		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestProductsRepository_InsertProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		acme := seedSupplier(t, db, "Acme")
		repo := NewProductsRepository(db)

		product := &Product{
			Name:        "Pixel",
			Brand:       "Google",
			Price:       decimal.RequireFromString("9.99"),
			Category:    "phones",
			Description: "refurbished",
			SupplierID:  acme.ID,
		}
		require.NoError(t, repo.InsertProduct(ctx, product))
		assert.NotZero(t, product.ID)

		var count int64
		require.NoError(t, db.Model(&Product{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing supplier is rejected by the foreign key", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProductsRepository(db)

		err := repo.InsertProduct(ctx, &Product{
			Name:       "Orphan",
			Price:      decimal.NewFromInt(1),
			SupplierID: 42,
		})
		assert.ErrorIs(t, err, ErrInsertFailed)

		var count int64
		require.NoError(t, db.Model(&Product{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestRecordStrings(t *testing.T) {
	s := Supplier{ID: 3, Name: "Acme", ContactInfo: "a@acme.com", Categories: "tools"}
	assert.Equal(t, "{id: 3, name: Acme, contact_info: a@acme.com, categories: tools}", s.String())

	p := ProductListing{
		ID:           7,
		Name:         "Drill",
		Brand:        "Bosch",
		Price:        decimal.RequireFromString("49.5"),
		Category:     "tools",
		Description:  "cordless",
		SupplierName: "Acme",
	}
	assert.Equal(t,
		"{id: 7, name: Drill, brand: Bosch, price: 49.50, category: tools, description: cordless, supplier_name: Acme}",
		p.String())
}
