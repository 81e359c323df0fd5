package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"hoteldesk/m/internal/logger"
	"hoteldesk/m/internal/service"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	db     *sqlx.DB
	svc    *service.Service
	secret string
	log    *logger.Logger
}

// New constructs a Handler.
func New(db *sqlx.DB, svc *service.Service, secret string, log *logger.Logger) *Handler {
	return &Handler{db: db, svc: svc, secret: secret, log: log}
}

// Router wires up the HTTP API.
func (h *Handler) Router(origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Group(func(protected chi.Router) {
			protected.Use(h.authMiddleware)
			protected.Post("/reset-password", h.resetPassword)
		})
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Route("/menu", func(r chi.Router) {
			r.Get("/", h.listMenu)
			r.Post("/", h.createMenuItem)
			r.Get("/{id}", h.getMenuItem)
			r.Put("/{id}", h.updateMenuItem)
			r.Delete("/{id}", h.deleteMenuItem)
		})

		pr.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.listInventory)
			r.Post("/", h.createInventory)
			r.Get("/low-stock", h.lowStock)
			r.Put("/{id}", h.updateInventory)
			r.Delete("/{id}", h.deleteInventory)
		})

		pr.Route("/orders", func(r chi.Router) {
			r.Post("/", h.createOrder)
			r.Get("/", h.listOrders)
			r.Get("/{id}", h.getOrder)
			r.Post("/{id}/items", h.addLineItem)
			r.Delete("/{id}/items/{itemID}", h.removeLineItem)
			r.Patch("/{id}/status", h.updateStatus)
		})
		pr.Delete("/line-items/{id}", h.deleteLineItem)

		pr.Route("/receipts", func(r chi.Router) {
			r.Post("/", h.createReceipt)
			r.Get("/", h.listReceipts)
			r.Get("/{id}", h.getReceipt)
			r.Post("/{id}/orders", h.attachOrders)
			r.Delete("/{id}/orders/{orderID}", h.detachOrder)
			r.Post("/{id}/print", h.printReceipt)
			r.Post("/{id}/settle", h.settleReceipt)
		})

		pr.Route("/reports", func(r chi.Router) {
			r.Get("/sales/today", h.todaySales)
			r.Get("/sales", h.salesReports)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
