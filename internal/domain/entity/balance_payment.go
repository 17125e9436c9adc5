package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago contra saldo.
const (
	PaymentTypeCustomer = "customer_payment"
	PaymentTypeVendor   = "vendor_payment"
)

// Prefijos de numeración para pagos. Los pagos usan el mismo asignador de
// consecutivos que las transacciones, con prefijo propio.
const (
	PrefixCustomerPayment = "CPAY"
	PrefixVendorPayment   = "VPAY"
)

// BalancePayment representa un abono al saldo de un cliente o proveedor.
// PreviousBalance y NewBalance son snapshots tomados al momento de aplicar el pago,
// no se rederivan después. Invariantes: Amount > 0, NewBalance = PreviousBalance − Amount,
// NewBalance >= 0 (un pago no puede exceder la deuda viva).
type BalancePayment struct {
	ID              string
	InvoiceNumber   string // única, prefijo CPAY/VPAY
	Type            string
	CustomerID      string
	CustomerName    string
	VendorID        string
	VendorName      string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Notes           string
	Date            time.Time
	CreatedAt       time.Time
	CreatedBy       string
}
