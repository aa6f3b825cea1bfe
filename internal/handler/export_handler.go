package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ExportHandler handles document download endpoints.
type ExportHandler struct {
	service ExportServiceInterface
	now     func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(service ExportServiceInterface) *ExportHandler {
	return &ExportHandler{service: service, now: time.Now}
}

// OrdersCSV godoc
// @Summary Export orders to CSV
// @Description Every order, newest first, one row per order
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/orders/export/csv [get]
func (h *ExportHandler) OrdersCSV(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.service.OrdersCSV(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}

	filename := fmt.Sprintf("orders_%s.csv", h.now().Format("2006-01-02"))
	writeAttachment(w, "text/csv", filename, csvData)
}

// InvoicePDF godoc
// @Summary Download an order invoice
// @Description PDF invoice of one of the caller's orders, with the EMI plan for EMI orders
// @Tags orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} file "PDF file"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/invoice [get]
func (h *ExportHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	pdfData, err := h.service.InvoicePDF(r.Context(), GetUserID(r.Context()), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	filename := fmt.Sprintf("gadgetpasal_invoice_%s.pdf", id.String()[:8])
	writeAttachment(w, "application/pdf", filename, pdfData)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
