package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every API handler so the server and tests mount the same routes.
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	EMI     *EMIHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Admin   *AdminHandler
	Export  *ExportHandler
	Tokens  TokenParser
}

// Health godoc
// @Summary Health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Mount registers the API routes under /api.
func (h *Handlers) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		// Public routes
		r.Post("/auth/signup", h.Auth.Signup)
		r.Post("/auth/login", h.Auth.Login)

		r.Get("/categories", h.Product.Categories)
		r.Get("/categories/{slug}/brands", h.Product.Brands)
		r.Get("/products", h.Product.List)
		r.Get("/products/{id}", h.Product.Get)
		r.Get("/products/{id}/emi-options", h.EMI.ProductOptions)

		r.Post("/emi/calculate", h.EMI.Calculate)
		r.Get("/emi/down-payment", h.EMI.DownPayment)
		r.Get("/emi/down-payment/reprice", h.EMI.RepriceDownPayment)
		r.Get("/emi/plans", h.EMI.Plans)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(h.Tokens))

			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/logout", h.Auth.Logout)

			r.Get("/cart", h.Cart.Get)
			r.Delete("/cart", h.Cart.Clear)
			r.Post("/cart/items", h.Cart.AddItem)
			r.Put("/cart/items/{productId}", h.Cart.SetQuantity)
			r.Delete("/cart/items/{productId}", h.Cart.RemoveItem)

			r.Post("/checkout", h.Order.Checkout)
			r.Get("/orders", h.Order.List)
			r.Get("/orders/{id}/invoice", h.Export.InvoicePDF)

			r.Route("/admin", func(r chi.Router) {
				r.Use(AdminOnly)

				r.Get("/summary", h.Admin.Summary)
				r.Get("/products", h.Admin.ListProducts)
				r.Post("/products", h.Admin.CreateProduct)
				r.Put("/products/{id}", h.Admin.UpdateProduct)
				r.Delete("/products/{id}", h.Admin.DeleteProduct)
				r.Get("/orders", h.Admin.ListOrders)
				r.Get("/orders/export/csv", h.Export.OrdersCSV)
				r.Put("/orders/{id}/status", h.Admin.UpdateOrderStatus)
			})
		})
	})
}
