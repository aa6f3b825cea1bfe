package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gadgetpasal/backend/internal/service"
	"github.com/gadgetpasal/backend/pkg/emi"
)

type EMIHandler struct {
	service EMIServiceInterface
}

func NewEMIHandler(service EMIServiceInterface) *EMIHandler {
	return &EMIHandler{service: service}
}

// numberText accepts a JSON number or string and keeps its text for the
// lenient numeric coercion of form fields.
type numberText string

func (n *numberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = numberText(num.String())
	return nil
}

func (n *numberText) amount() *float64 {
	if n == nil {
		return nil
	}
	v := emi.ParseAmount(string(*n))
	return &v
}

// CalculateRequest is the calculator form. Numbers may be sent as strings.
type CalculateRequest struct {
	Price              *numberText `json:"price" swaggertype:"string" example:"50000"`
	DownPayment        *numberText `json:"downPayment,omitempty" swaggertype:"string" example:"10000"`
	DownPaymentPercent *numberText `json:"downPaymentPercent,omitempty" swaggertype:"string" example:"20"`
	DurationMonths     *numberText `json:"durationMonths" swaggertype:"string" example:"6"`
	Mode               string      `json:"mode,omitempty" example:"amount"`
}

func (req CalculateRequest) input() service.CalculateInput {
	in := service.CalculateInput{
		DownPayment:        req.DownPayment.amount(),
		DownPaymentPercent: req.DownPaymentPercent.amount(),
		Mode:               req.Mode,
	}
	if req.Price != nil {
		in.Price = emi.ParseAmount(string(*req.Price))
	}
	if req.DurationMonths != nil {
		in.DurationMonths = emi.ParseInt(string(*req.DurationMonths))
	}
	return in
}

// Calculate godoc
// @Summary Calculate an EMI plan
// @Description Amortize price minus down payment over the chosen duration at the store's rate
// @Tags emi
// @Accept json
// @Produce json
// @Param input body CalculateRequest true "Calculator inputs"
// @Param schedule query bool false "Include the month by month schedule"
// @Success 200 {object} service.Quote
// @Failure 400 {object} ErrorResponse
// @Router /emi/calculate [post]
func (h *EMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	input := req.input()
	input.IncludeSchedule = queryBool(r, "schedule")

	quote, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// DownPayment godoc
// @Summary Synchronize down payment amount and percent
// @Description Give either amount or percent; the other side is derived and clamped
// @Tags emi
// @Produce json
// @Param price query string true "Product price"
// @Param amount query string false "Down payment amount"
// @Param percent query string false "Down payment percent"
// @Success 200 {object} service.DownPaymentQuote
// @Failure 400 {object} ErrorResponse
// @Router /emi/down-payment [get]
func (h *EMIHandler) DownPayment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := service.DownPaymentInput{Price: emi.ParseAmount(q.Get("price"))}
	if q.Has("amount") {
		v := emi.ParseAmount(q.Get("amount"))
		input.Amount = &v
	}
	if q.Has("percent") {
		v := emi.ParseAmount(q.Get("percent"))
		input.Percent = &v
	}

	quote, err := h.service.SyncDownPayment(input)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// RepriceDownPayment godoc
// @Summary Follow a price change
// @Description Keep the down payment percent and recompute the amount for a new price
// @Tags emi
// @Produce json
// @Param price query string true "New price"
// @Param percent query string true "Current down payment percent"
// @Success 200 {object} service.DownPaymentQuote
// @Router /emi/down-payment/reprice [get]
func (h *EMIHandler) RepriceDownPayment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	quote := h.service.RepriceDownPayment(emi.ParseAmount(q.Get("price")), emi.ParseInt(q.Get("percent")))
	respondJSON(w, http.StatusOK, quote)
}

// ProductOptions godoc
// @Summary EMI options for a product
// @Description The standard 3, 6, 9 and 12 month plans for a catalog product
// @Tags emi
// @Produce json
// @Param id path string true "Product ID"
// @Param downPayment query string false "Down payment amount"
// @Success 200 {object} service.ProductEMIOptions
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/emi-options [get]
func (h *EMIHandler) ProductOptions(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	options, err := h.service.ProductOptions(r.Context(), id, emi.ParseAmount(r.URL.Query().Get("downPayment")))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

// Plans godoc
// @Summary EMI plans and terms
// @Description Rate table, fallback rate, partner banks, wallets and EMI terms
// @Tags emi
// @Produce json
// @Success 200 {object} service.PaymentPlans
// @Router /emi/plans [get]
func (h *EMIHandler) Plans(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Plans())
}
