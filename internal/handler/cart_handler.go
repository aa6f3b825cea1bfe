package handler

import (
	"net/http"

	_ "github.com/gadgetpasal/backend/internal/model" // swagger types
	"github.com/gadgetpasal/backend/internal/service"
)

type CartHandler struct {
	service CartServiceInterface
}

func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get godoc
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Cart
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Get(r.Context(), GetUserID(r.Context()))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Merges with an existing line of the same product, color and storage
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.AddCartItemInput true "Item"
// @Success 200 {object} model.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Out of stock"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input service.AddCartItemInput
	if err := decodeJSON(r, &input); err != nil {
		respondErr(w, r, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), GetUserID(r.Context()), input)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// SetQuantity godoc
// @Summary Change a product's quantity
// @Description Quantities below 1 are raised to 1
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param input body SetQuantityRequest true "Quantity"
// @Success 200 {object} model.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "productId")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	var req SetQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), GetUserID(r.Context()), productID, req.Quantity)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} model.Cart
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "productId")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), GetUserID(r.Context()), productID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), GetUserID(r.Context())); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
