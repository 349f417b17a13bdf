package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a product offered by a supplier.
// SupplierID must reference an existing supplier; only the storage engine enforces it.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Brand       string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string
	Description string
	SupplierID  uint     `gorm:"not null"`
	Supplier    Supplier `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (p *Product) TableName() string {
	return "products"
}

// ProductListing is a product row joined with the name of its supplier.
type ProductListing struct {
	ID           uint
	Name         string
	Brand        string
	Price        decimal.Decimal
	Category     string
	Description  string
	SupplierName string
}

func (p ProductListing) String() string {
	return fmt.Sprintf("{id: %d, name: %s, brand: %s, price: %s, category: %s, description: %s, supplier_name: %s}",
		p.ID, p.Name, p.Brand, p.Price.StringFixed(2), p.Category, p.Description, p.SupplierName)
}
