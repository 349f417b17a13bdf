package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mytheresa/supplier-catalog-chat/app/api"
	"github.com/mytheresa/supplier-catalog-chat/app/chat"
	"github.com/mytheresa/supplier-catalog-chat/app/database"
	"github.com/mytheresa/supplier-catalog-chat/app/middleware"
	"github.com/mytheresa/supplier-catalog-chat/app/products"
	"github.com/mytheresa/supplier-catalog-chat/app/suppliers"
	"github.com/mytheresa/supplier-catalog-chat/models"
)

type Options struct {
	DB             *gorm.DB
	Generator      chat.Generator
	Logger         zerolog.Logger
	AllowedOrigins []string
	// Registry receives the HTTP metrics; a fresh registry is used when nil.
	Registry *prometheus.Registry
}

// New wires repositories, handlers and middleware into a chi router.
func New(opts Options) http.Handler {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	productsRepo := models.NewProductsRepository(opts.DB)
	suppliersRepo := models.NewSuppliersRepository(opts.DB)

	productsHandler := products.NewProductsHandler(productsRepo)
	suppliersHandler := suppliers.NewSuppliersHandler(suppliersRepo)
	chatHandler := chat.NewChatHandler(chat.NewDispatcher(productsRepo, suppliersRepo, opts.Generator))

	r := chi.NewRouter()
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler(opts.DB))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/suppliers", suppliersHandler.HandleGetAll)
	r.Post("/suppliers", suppliersHandler.HandlePost)
	r.Get("/products", productsHandler.HandleGet)
	r.Post("/products", productsHandler.HandlePost)
	r.Post("/chat", chatHandler.HandlePost)

	return r
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			api.ErrorResponse(w, r, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		api.OKResponse(w, r, map[string]string{"status": "ok"})
	}
}
