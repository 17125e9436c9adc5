package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un abono contra el saldo de una contraparte.
// CustomerID para customer_payment, VendorID para vendor_payment.
type CreatePaymentRequest struct {
	Type       string          `json:"type"` // customer_payment | vendor_payment
	CustomerID string          `json:"customer_id"`
	VendorID   string          `json:"vendor_id"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
	Date       *time.Time      `json:"date"` // opcional; por defecto ahora
}

// PaymentResponse salida de un pago con el snapshot de saldos al momento de aplicarlo.
type PaymentResponse struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	Type            string          `json:"type"`
	CustomerID      string          `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	VendorID        string          `json:"vendor_id,omitempty"`
	VendorName      string          `json:"vendor_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Notes           string          `json:"notes,omitempty"`
	Date            time.Time       `json:"date"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
