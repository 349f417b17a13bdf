// Package chat answers free-text questions about products and suppliers by
// fetching the matching table and handing it to a text generation model.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/mytheresa/supplier-catalog-chat/app/llm"
	"github.com/mytheresa/supplier-catalog-chat/models"
)

type Intent int

const (
	IntentUnknown Intent = iota
	IntentProducts
	IntentSuppliers
)

func (i Intent) String() string {
	switch i {
	case IntentProducts:
		return "products"
	case IntentSuppliers:
		return "suppliers"
	default:
		return "unknown"
	}
}

const NotUnderstoodMessage = "I didn't understand your query. Please ask about products or suppliers."

// Classify picks the table a question is about. "product" is checked first,
// so text mentioning both goes to products.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "product"):
		return IntentProducts
	case strings.Contains(lower, "supplier"):
		return IntentSuppliers
	default:
		return IntentUnknown
	}
}

type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]models.ProductListing, error)
}

type SupplierFetcher interface {
	FetchSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type Generator interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

type Dispatcher struct {
	products  ProductFetcher
	suppliers SupplierFetcher
	generator Generator
}

func NewDispatcher(products ProductFetcher, suppliers SupplierFetcher, generator Generator) *Dispatcher {
	return &Dispatcher{
		products:  products,
		suppliers: suppliers,
		generator: generator,
	}
}

// Respond returns the generated reply for text. Unrecognized text and empty
// tables get fixed messages without calling the model. The generated text is
// returned as is; nothing checks it against the fetched rows.
func (d *Dispatcher) Respond(ctx context.Context, text string) (string, error) {
	intent := Classify(text)

	var records []fmt.Stringer
	switch intent {
	case IntentProducts:
		products, err := d.products.FetchProducts(ctx)
		if err != nil {
			return "", err
		}
		if len(products) == 0 {
			return models.NoProductsMessage, nil
		}
		for _, p := range products {
			records = append(records, p)
		}
	case IntentSuppliers:
		suppliers, err := d.suppliers.FetchSuppliers(ctx)
		if err != nil {
			return "", err
		}
		if len(suppliers) == 0 {
			return models.NoSuppliersMessage, nil
		}
		for _, s := range suppliers {
			records = append(records, s)
		}
	default:
		return NotUnderstoodMessage, nil
	}

	return d.generator.Generate(ctx, llm.DefaultSampling(Prompt(intent, records)))
}

// Prompt renders a header line followed by one line per record.
func Prompt(intent Intent, records []fmt.Stringer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the %s details:\n", intent)
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	return b.String()
}
