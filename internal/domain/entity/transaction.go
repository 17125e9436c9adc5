package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de negocio.
const (
	TransactionTypeSale     = "sale"
	TransactionTypePurchase = "purchase"
	TransactionTypeReturn   = "return"
)

// Prefijos de numeración por tipo de documento.
const (
	PrefixSale     = "INV"
	PrefixPurchase = "PUR"
	PrefixReturn   = "RET"
)

// Transaction representa un evento de negocio (venta, compra o devolución) con sus líneas.
// Se crea de forma atómica junto con sus efectos de stock y saldo; nunca queda a medias.
// CustomerID XOR VendorID según el tipo; los nombres son snapshots de solo lectura
// capturados al momento de confirmar (renombrar el maestro no altera el histórico).
type Transaction struct {
	ID            string
	InvoiceNumber string // única, formato {PREFIX}{YYYY}{MM}{DD}{SERIAL}
	Type          string
	CustomerID    string
	CustomerName  string
	VendorID      string
	VendorName    string
	TotalAmount   decimal.Decimal // suma de TotalPrice de las líneas; nunca se confía en el caller
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
	Items         []*TransactionItem
}

// TransactionItem línea de una transacción. ProductName es snapshot de display.
// LineNo es la posición 1-based dentro del documento y preserva el orden de captura.
type TransactionItem struct {
	ID            string
	TransactionID string
	LineNo        int
	ProductID     string
	ProductName   string
	Quantity      int64
	Price         decimal.Decimal
	TotalPrice    decimal.Decimal // Quantity × Price
}
