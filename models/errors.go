package models

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrFetchFailed is returned when a table could not be read.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrInsertFailed is returned when a row could not be inserted.
	ErrInsertFailed = errors.New("insert failed")
	// ErrUnknownSupplier is returned when a product references a missing supplier.
	ErrUnknownSupplier = errors.New("supplier does not exist")
)

// Replies for empty tables, shared by the listing endpoints and chat.
const (
	NoProductsMessage  = "No products found in the database."
	NoSuppliersMessage = "No suppliers found in the database."
)

func SupplierAddedMessage(name string) string {
	return fmt.Sprintf("Supplier '%s' added successfully.", name)
}

func SupplierFailedMessage(name string) string {
	return fmt.Sprintf("Failed to add supplier '%s'.", name)
}

func ProductAddedMessage(name string) string {
	return fmt.Sprintf("Product '%s' added successfully.", name)
}

func ProductFailedMessage(name string) string {
	return fmt.Sprintf("Failed to add product '%s'.", name)
}

// insertError wraps a failed insert, tagging foreign key violations
// reported either by gorm's error translation or directly by lib/pq.
func insertError(err error) error {
	var pqErr *pq.Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		(errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation") {
		return fmt.Errorf("%w: %w: %v", ErrInsertFailed, ErrUnknownSupplier, err)
	}
	return fmt.Errorf("%w: %w", ErrInsertFailed, err)
}
