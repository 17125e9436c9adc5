package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity inicial puede ser cero; después solo cambia vía transacciones.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Quantity          int64           `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Quantity          int64           `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCounterpartyRequest entrada para crear un cliente o proveedor.
type CreateCounterpartyRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CounterpartyResponse salida de un cliente o proveedor con su saldo vivo.
type CounterpartyResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TaxID     string          `json:"tax_id,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// CounterpartyListResponse lista paginada de clientes o proveedores.
type CounterpartyListResponse struct {
	Items []CounterpartyResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateExpenseRequest entrada para registrar un gasto operativo.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"` // opcional; por defecto ahora
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
