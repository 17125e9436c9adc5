package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo registrado manualmente. Solo alimenta el cálculo de
// caja del dashboard; no toca stock ni saldos de contrapartes.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string
}
