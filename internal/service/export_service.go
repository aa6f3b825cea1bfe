package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/internal/repository"
	"github.com/gadgetpasal/backend/pkg/currency"
)

// StoreName is printed on generated documents.
const StoreName = "GadgetPasal"

// OrderReader is the read side of order persistence used by exports.
type OrderReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
}

// ExportService renders orders as CSV for staff and as PDF invoices for customers.
type ExportService struct {
	orders   OrderReader
	quoter   Quoter
	currency currency.Currency
	now      func() time.Time
}

// NewExportService creates a new ExportService. The quoter prices the EMI
// plan printed on invoices of EMI orders.
func NewExportService(orders OrderReader, quoter Quoter, curr currency.Currency) *ExportService {
	if curr == "" {
		curr = currency.DefaultCurrency
	}
	return &ExportService{orders: orders, quoter: quoter, currency: curr, now: time.Now}
}

// OrdersCSV exports every order, newest first, one row per order.
func (s *ExportService) OrdersCSV(ctx context.Context) ([]byte, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for export: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Order ID", "Placed", "Customer ID", "Status", "Payment", "EMI Months", "Items", "Total", "Currency"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, o := range orders {
		emiMonths := ""
		if o.EMIMonths != nil {
			emiMonths = strconv.Itoa(*o.EMIMonths)
		}
		quantity := 0
		for _, item := range o.Items {
			quantity += item.Quantity
		}

		row := []string{
			o.ID.String(),
			o.CreatedAt.UTC().Format(time.RFC3339),
			o.UserID.String(),
			string(o.Status),
			o.PaymentMethod,
			emiMonths,
			strconv.Itoa(quantity),
			currency.NewMoney(o.TotalAmount, s.currency).Format(),
			string(s.currency),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

// InvoicePDF renders the invoice of one of the user's orders. Orders of
// other users are reported as not found.
func (s *ExportService) InvoicePDF(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, apperror.NotFound("order")
		}
		return nil, fmt.Errorf("fetching order: %w", err)
	}
	if order.UserID != userID {
		return nil, apperror.NotFound("order")
	}

	var plan *Quote
	if order.EMIMonths != nil && s.quoter != nil {
		plan, err = s.quoter.QuoteFor(ctx, order.TotalAmount, *order.EMIMonths)
		if err != nil {
			return nil, fmt.Errorf("pricing EMI plan: %w", err)
		}
	}

	return s.renderInvoice(order, plan)
}

func (s *ExportService) format(amount decimal.Decimal) string {
	return currency.NewMoney(amount, s.currency).FormatWhole()
}

func (s *ExportService) renderInvoice(order *model.Order, plan *Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, StoreName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 7, "Invoice "+shortID(order.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, order.CreatedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	pdf.Ln(8)

	// Order summary
	s.sectionTitle(pdf, "Order")
	pdf.SetFont("Arial", "", 11)
	s.labelRow(pdf, "Status", string(order.Status))
	s.labelRow(pdf, "Payment", paymentLabel(order.PaymentMethod))

	pdf.Ln(8)

	// Items table
	s.sectionTitle(pdf, "Items")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(248, 249, 250)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(85, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.CellFormat(85, 7, itemLabel(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, s.format(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, s.format(subtotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(135, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, s.format(order.TotalAmount), "", 1, "R", false, 0, "")

	// EMI plan
	if plan != nil {
		pdf.Ln(8)
		s.sectionTitle(pdf, "EMI Plan")
		pdf.SetFont("Arial", "", 11)
		s.labelRow(pdf, "Duration", fmt.Sprintf("%d months", plan.DurationMonths))
		s.labelRow(pdf, "Interest Rate", plan.Formatted.AnnualRate)
		s.labelRow(pdf, "Monthly Payment", plan.Formatted.MonthlyPayment)
		s.labelRow(pdf, "Total Payment", plan.Formatted.TotalPayment)
		s.labelRow(pdf, "Total Interest", plan.Formatted.InterestPaid)

		if len(plan.Schedule) > 0 {
			pdf.Ln(4)
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(20, 8, "Month", "1", 0, "C", true, 0, "")
			pdf.CellFormat(40, 8, "Due", "1", 0, "L", true, 0, "")
			pdf.CellFormat(50, 8, "Payment", "1", 0, "R", true, 0, "")
			pdf.CellFormat(60, 8, "Remaining", "1", 1, "R", true, 0, "")

			pdf.SetFont("Arial", "", 10)
			for _, row := range plan.Schedule {
				pdf.CellFormat(20, 7, strconv.Itoa(row.Month), "1", 0, "C", false, 0, "")
				pdf.CellFormat(40, 7, row.DueDate.String(), "1", 0, "L", false, 0, "")
				pdf.CellFormat(50, 7, s.format(row.Payment), "1", 0, "R", false, 0, "")
				pdf.CellFormat(60, 7, s.format(row.RemainingBalance), "1", 1, "R", false, 0, "")
			}
		}
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated by %s on %s", StoreName, s.now().Format("January 2, 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ExportService) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(4)
}

func (s *ExportService) labelRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(85, 7, label, "", 0, "L", false, 0, "")
	pdf.SetTextColor(33, 37, 41)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(85, 7, value, "", 1, "R", false, 0, "")
}

func paymentLabel(method string) string {
	switch method {
	case PaymentCashOnDelivery:
		return "Cash on delivery"
	case PaymentCard:
		return "Card"
	case PaymentWallet:
		return "Digital wallet"
	case PaymentEMI:
		return "EMI"
	}
	return method
}

// itemLabel names an order line with its chosen variant, e.g.
// "iPhone 15 Pro Max (Blue Titanium, 256GB)".
func itemLabel(item model.OrderItem) string {
	var variant []string
	for _, v := range []string{item.Color, item.Storage} {
		if v != "" {
			variant = append(variant, v)
		}
	}
	if len(variant) == 0 {
		return item.ProductName
	}
	return fmt.Sprintf("%s (%s)", item.ProductName, strings.Join(variant, ", "))
}

func shortID(id uuid.UUID) string {
	return "#" + id.String()[:8]
}
