package suppliers

import (
	"context"
	"net/http"
	"strings"

	"github.com/mytheresa/supplier-catalog-chat/app/api"
	"github.com/mytheresa/supplier-catalog-chat/app/querytext"
	"github.com/mytheresa/supplier-catalog-chat/models"
)

const (
	FormatHintMessage   = "Invalid query format. Use: 'Add supplier: name=<name>, contact_info=<email>, categories=<categories>'"
	InvalidQueryMessage = "Invalid query. Please ask about showing or adding suppliers."
)

type SupplierResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Categories  string `json:"categories"`
}

type Response struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// SupplierInput is the structured alternative to the "add supplier:" query text.
type SupplierInput struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Categories  string `json:"categories"`
}

type PostRequest struct {
	Query    string         `json:"query"`
	Supplier *SupplierInput `json:"supplier"`
}

type SupplierProvider interface {
	FetchSuppliers(ctx context.Context) ([]models.Supplier, error)
	InsertSupplier(ctx context.Context, supplier *models.Supplier) error
}

type SuppliersHandler struct {
	repo SupplierProvider
}

func NewSuppliersHandler(r SupplierProvider) *SuppliersHandler {
	return &SuppliersHandler{repo: r}
}

func (h *SuppliersHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	h.listSuppliers(w, r)
}

func (h *SuppliersHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var input PostRequest
	if !api.DecodeJSON(w, r, &input) {
		return
	}

	if in := input.Supplier; in != nil {
		if in.Name == "" {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Missing name")
			return
		}
		h.addSupplier(w, r, &models.Supplier{
			Name:        in.Name,
			ContactInfo: in.ContactInfo,
			Categories:  in.Categories,
		})
		return
	}

	query := strings.ToLower(input.Query)
	switch {
	case strings.Contains(query, "show me all suppliers"):
		h.listSuppliers(w, r)
	case strings.Contains(query, "add supplier"):
		if !querytext.HasKeys(input.Query, querytext.SupplierKeys) {
			api.MessageResponse(w, r, http.StatusOK, FormatHintMessage)
			return
		}
		supplier := querytext.ParseSupplier(input.Query)
		h.addSupplier(w, r, &supplier)
	default:
		api.MessageResponse(w, r, http.StatusOK, InvalidQueryMessage)
	}
}

func (h *SuppliersHandler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.repo.FetchSuppliers(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	if len(suppliers) == 0 {
		api.MessageResponse(w, r, http.StatusOK, models.NoSuppliersMessage)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		response[i] = SupplierResponse{
			ID:          s.ID,
			Name:        s.Name,
			ContactInfo: s.ContactInfo,
			Categories:  s.Categories,
		}
	}
	api.OKResponse(w, r, Response{Suppliers: response})
}

func (h *SuppliersHandler) addSupplier(w http.ResponseWriter, r *http.Request, supplier *models.Supplier) {
	if err := h.repo.InsertSupplier(r.Context(), supplier); err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, models.SupplierFailedMessage(supplier.Name))
		return
	}
	api.MessageResponse(w, r, http.StatusCreated, models.SupplierAddedMessage(supplier.Name))
}
