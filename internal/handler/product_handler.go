package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/model"
)

type ProductHandler struct {
	service CatalogServiceInterface
}

func NewProductHandler(service CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// List godoc
// @Summary List products
// @Description Storefront listing, newest first
// @Tags products
// @Produce json
// @Param category query string false "Category slug (brand-new, used, laptops, accessories)"
// @Param search query string false "Case-insensitive name search"
// @Param brand query []string false "Brands to include; repeat or comma-separate" collectionFormat(multi)
// @Param minPrice query number false "Lowest price, inclusive"
// @Param maxPrice query number false "Highest price, inclusive"
// @Param inStock query bool false "Only products in stock"
// @Param featured query bool false "Only featured products"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} model.Product
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Brands:   queryList(r, "brand"),
		InStock:  queryBool(r, "inStock"),
		Featured: queryBool(r, "featured"),
	}

	var err error
	if filter.MinPrice, err = queryDecimal(r, "minPrice"); err != nil {
		respondErr(w, r, err)
		return
	}
	if filter.MaxPrice, err = queryDecimal(r, "maxPrice"); err != nil {
		respondErr(w, r, err)
		return
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		respondErr(w, r, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		respondErr(w, r, err)
		return
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// Get godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Brands godoc
// @Summary List the brands of a category
// @Description Sorted distinct brands, for the listing's brand filter
// @Tags products
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {array} string
// @Failure 404 {object} ErrorResponse
// @Router /categories/{slug}/brands [get]
func (h *ProductHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.Brands(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, brands)
}

// Categories godoc
// @Summary List categories
// @Tags products
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Categories())
}

// queryList collects a repeatable query parameter, also splitting
// comma-separated values. Blank entries are dropped.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// queryDecimal parses an optional decimal query parameter; absent means nil.
func queryDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperror.ValidationError(name, name+" must be a number")
	}
	return &v, nil
}
