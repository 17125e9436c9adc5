package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Todas las cifras son
// agregaciones derivadas de transactions, balance_payments y expenses; usa COALESCE
// para devolver cero en períodos sin movimiento.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el total de productos y cuántos están en o bajo su umbral
// de stock bajo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (total, lowStock int64, err error) {
	const query = `
	SELECT
	    COUNT(*)                                                        AS total,
	    COUNT(*) FILTER (WHERE quantity <= low_stock_threshold)         AS low_stock
	FROM products`
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &lowStock); err != nil {
		return 0, 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return total, lowStock, nil
}

// SumTransactions suma total_amount de las transacciones del tipo en el rango [from, to].
func (r *AnalyticsRepo) SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM transactions
	WHERE type = $1 AND date BETWEEN $2 AND $3`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, txType, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumTransactions: %w", err)
	}
	return sum, nil
}

// SumPayments suma amount de los pagos del tipo en el rango [from, to].
func (r *AnalyticsRepo) SumPayments(ctx context.Context, paymentType string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM balance_payments
	WHERE type = $1 AND date BETWEEN $2 AND $3`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, paymentType, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumPayments: %w", err)
	}
	return sum, nil
}

// SumExpenses suma los gastos del rango [from, to].
func (r *AnalyticsRepo) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE date BETWEEN $1 AND $2`
	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumExpenses: %w", err)
	}
	return sum, nil
}
