package handler

import (
	"net/http"

	_ "github.com/gadgetpasal/backend/internal/model" // swagger types
	"github.com/gadgetpasal/backend/internal/service"
)

type OrderHandler struct {
	service OrderServiceInterface
}

func NewOrderHandler(service OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// Checkout godoc
// @Summary Place an order from the cart
// @Description Creates a pending order and empties the cart. An EMI duration attaches a quote on the order total.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.CheckoutInput true "Payment choice"
// @Success 201 {object} service.CheckoutResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkout [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input service.CheckoutInput
	if err := decodeJSON(r, &input); err != nil {
		respondErr(w, r, err)
		return
	}

	result, err := h.service.Checkout(r.Context(), GetUserID(r.Context()), input)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// List godoc
// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListForUser(r.Context(), GetUserID(r.Context()))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
