package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para el dashboard.
// Agregaciones derivadas, nunca estado autoritativo: todo se recalcula desde
// transactions, balance_payments y expenses.
type AnalyticsRepository interface {
	// CountProducts total de productos y cuántos están en o bajo su umbral de stock.
	CountProducts(ctx context.Context) (total, lowStock int64, err error)
	// SumTransactions suma de total_amount de las transacciones del tipo en el rango.
	SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error)
	// SumPayments suma de amount de los pagos del tipo en el rango.
	SumPayments(ctx context.Context, paymentType string, from, to time.Time) (decimal.Decimal, error)
	// SumExpenses suma de gastos en el rango.
	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
