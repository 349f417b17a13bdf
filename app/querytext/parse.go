// Package querytext parses the "add <kind>: key=value, key=value" format
// accepted by the free-text product and supplier endpoints.
package querytext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/supplier-catalog-chat/models"
)

var (
	SupplierKeys = []string{"name", "contact_info", "categories"}
	ProductKeys  = []string{"name", "brand", "price", "category", "description", "supplier_id"}
)

var ErrInvalidValue = errors.New("invalid value")

// HasKeys reports whether Fields finds every key in text, ignoring case.
// A "key=" token that is not its own comma-separated pair does not count.
func HasKeys(text string, keys []string) bool {
	fields := Fields(text)
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			return false
		}
	}
	return true
}

// Fields extracts key=value pairs from comma-separated text. The key is the
// last word before '=', so a leading "Add product:" is ignored. A segment
// without '=' continues the previous value, which keeps comma-delimited
// values such as "categories=laptops, phones" intact. Keys are lower-cased,
// values keep their case and are trimmed.
func Fields(text string) map[string]string {
	fields := make(map[string]string)
	last := ""
	for _, segment := range strings.Split(text, ",") {
		idx := strings.Index(segment, "=")
		if idx < 0 {
			if last != "" {
				if part := strings.TrimSpace(segment); part != "" {
					fields[last] += ", " + part
				}
			}
			continue
		}

		words := strings.FieldsFunc(segment[:idx], func(r rune) bool {
			return unicode.IsSpace(r) || r == ':'
		})
		if len(words) == 0 {
			continue
		}
		last = strings.ToLower(words[len(words)-1])
		fields[last] = strings.TrimSpace(segment[idx+1:])
	}
	return fields
}

// ParseSupplier builds a supplier from text. The caller checks HasKeys first.
func ParseSupplier(text string) models.Supplier {
	f := Fields(text)
	return models.Supplier{
		Name:        f["name"],
		ContactInfo: f["contact_info"],
		Categories:  f["categories"],
	}
}

// ParseProduct builds a product from text, converting price to a decimal and
// supplier_id to an integer. The caller checks HasKeys first.
func ParseProduct(text string) (models.Product, error) {
	f := Fields(text)

	price, err := decimal.NewFromString(f["price"])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: price %q is not a number", ErrInvalidValue, f["price"])
	}
	supplierID, err := strconv.ParseUint(f["supplier_id"], 10, 0)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: supplier_id %q is not an integer", ErrInvalidValue, f["supplier_id"])
	}

	return models.Product{
		Name:        f["name"],
		Brand:       f["brand"],
		Price:       price,
		Category:    f["category"],
		Description: f["description"],
		SupplierID:  uint(supplierID),
	}, nil
}
