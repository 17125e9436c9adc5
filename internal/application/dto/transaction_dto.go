package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest una línea de la transacción. Si Price viene en cero se usa
// el precio vigente del producto.
type TransactionItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateTransactionRequest entrada para crear una venta, compra o devolución.
// CustomerID aplica a ventas y devoluciones de cliente; VendorID a compras y
// devoluciones a proveedor. Nunca ambos.
type CreateTransactionRequest struct {
	Type       string                   `json:"type"` // sale | purchase | return
	CustomerID string                   `json:"customer_id"`
	VendorID   string                   `json:"vendor_id"`
	Date       *time.Time               `json:"date"` // opcional; por defecto ahora
	Items      []TransactionItemRequest `json:"items"`
}

// TransactionItemResponse salida de una línea.
type TransactionItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// TransactionResponse salida de una transacción con sus líneas.
type TransactionResponse struct {
	ID            string                    `json:"id"`
	InvoiceNumber string                    `json:"invoice_number"`
	Type          string                    `json:"type"`
	CustomerID    string                    `json:"customer_id,omitempty"`
	CustomerName  string                    `json:"customer_name,omitempty"`
	VendorID      string                    `json:"vendor_id,omitempty"`
	VendorName    string                    `json:"vendor_name,omitempty"`
	TotalAmount   decimal.Decimal           `json:"total_amount"`
	Date          time.Time                 `json:"date"`
	Items         []TransactionItemResponse `json:"items"`
}

// TransactionListResponse lista paginada de transacciones (sin líneas).
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
