package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles de contraparte para el ledger (§ reconstrucción).
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
)

// Customer representa un cliente. Balance es "lo que el cliente nos debe":
// siempre igual a la suma de todos los deltas firmados aplicados (reproducible por replay).
type Customer struct {
	ID        string
	Name      string // única
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vendor representa un proveedor. Balance es "lo que le debemos al proveedor";
// misma disciplina de deltas que Customer.
type Vendor struct {
	ID        string
	Name      string // única
	TaxID     string
	Email     string
	Phone     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
