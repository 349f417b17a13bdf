package models

import "fmt"

// Supplier represents a vendor that provides products.
// Categories is free text, informally comma-delimited.
type Supplier struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	ContactInfo string
	Categories  string
}

func (s *Supplier) TableName() string {
	return "suppliers"
}

func (s Supplier) String() string {
	return fmt.Sprintf("{id: %d, name: %s, contact_info: %s, categories: %s}",
		s.ID, s.Name, s.ContactInfo, s.Categories)
}
