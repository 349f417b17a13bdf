package products

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mytheresa/supplier-catalog-chat/app/api"
	"github.com/mytheresa/supplier-catalog-chat/app/querytext"
	"github.com/mytheresa/supplier-catalog-chat/models"
)

const (
	FormatHintMessage   = "Invalid query format. Use: 'Add product: name=<name>, brand=<brand>, price=<price>, category=<category>, description=<description>, supplier_id=<supplier_id>'"
	InvalidQueryMessage = "Invalid query. Please ask about showing or adding products."
)

type Response struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	SupplierName string  `json:"supplier_name"`
}

// ProductInput is the structured alternative to the "add product:" query text.
type ProductInput struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	SupplierID  uint            `json:"supplier_id"`
}

type PostRequest struct {
	Query   string        `json:"query"`
	Product *ProductInput `json:"product"`
}

type ProductProvider interface {
	FetchProducts(ctx context.Context) ([]models.ProductListing, error)
	InsertProduct(ctx context.Context, product *models.Product) error
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{
		repo: r,
	}
}

func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.listProducts(w, r)
}

// HandlePost either lists products or adds one, depending on the query text.
// A structured "product" object in the body takes precedence over the query.
func (h *ProductsHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var input PostRequest
	if !api.DecodeJSON(w, r, &input) {
		return
	}

	if in := input.Product; in != nil {
		if in.Name == "" || in.SupplierID == 0 {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Missing name or supplier_id")
			return
		}
		h.addProduct(w, r, &models.Product{
			Name:        in.Name,
			Brand:       in.Brand,
			Price:       in.Price,
			Category:    in.Category,
			Description: in.Description,
			SupplierID:  in.SupplierID,
		})
		return
	}

	query := strings.ToLower(input.Query)
	switch {
	case strings.Contains(query, "show me all products"):
		h.listProducts(w, r)
	case strings.Contains(query, "add product"):
		if !querytext.HasKeys(input.Query, querytext.ProductKeys) {
			api.MessageResponse(w, r, http.StatusOK, FormatHintMessage)
			return
		}
		product, err := querytext.ParseProduct(input.Query)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.addProduct(w, r, &product)
	default:
		api.MessageResponse(w, r, http.StatusOK, InvalidQueryMessage)
	}
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.FetchProducts(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	if len(res) == 0 {
		api.MessageResponse(w, r, http.StatusOK, models.NoProductsMessage)
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = Product{
			ID:           p.ID,
			Name:         p.Name,
			Brand:        p.Brand,
			Price:        p.Price.InexactFloat64(),
			Category:     p.Category,
			Description:  p.Description,
			SupplierName: p.SupplierName,
		}
	}
	api.OKResponse(w, r, Response{Products: products})
}

func (h *ProductsHandler) addProduct(w http.ResponseWriter, r *http.Request, product *models.Product) {
	if err := h.repo.InsertProduct(r.Context(), product); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrUnknownSupplier) {
			status = http.StatusUnprocessableEntity
		}
		api.ErrorResponse(w, r, status, models.ProductFailedMessage(product.Name))
		return
	}
	api.MessageResponse(w, r, http.StatusCreated, models.ProductAddedMessage(product.Name))
}
