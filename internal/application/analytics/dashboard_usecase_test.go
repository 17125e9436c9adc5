package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexapp/kardex-api/internal/application/analytics"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// fakeAnalyticsRepo cifras fijas por tipo; distingue rango mensual vs acumulado
// por la fecha de inicio.
type fakeAnalyticsRepo struct {
	totalProducts int64
	lowStock      int64
	sales         decimal.Decimal
	purchases     decimal.Decimal
	monthExpenses decimal.Decimal
	allExpenses   decimal.Decimal
	custPayments  decimal.Decimal
	vendPayments  decimal.Decimal
	err           error
}

func (f *fakeAnalyticsRepo) CountProducts(ctx context.Context) (int64, int64, error) {
	return f.totalProducts, f.lowStock, f.err
}

func (f *fakeAnalyticsRepo) SumTransactions(ctx context.Context, txType string, from, to time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	if txType == entity.TransactionTypeSale {
		return f.sales, nil
	}
	return f.purchases, nil
}

func (f *fakeAnalyticsRepo) SumPayments(ctx context.Context, paymentType string, from, to time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	if paymentType == entity.PaymentTypeCustomer {
		return f.custPayments, nil
	}
	return f.vendPayments, nil
}

func (f *fakeAnalyticsRepo) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	// El rango acumulado arranca en el epoch del sistema; el mensual, el día 1.
	if from.Year() == 2000 {
		return f.allExpenses, nil
	}
	return f.monthExpenses, nil
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestDashboard_ResumenCompleto(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		totalProducts: 12,
		lowStock:      3,
		sales:         d("300"),
		purchases:     d("500"),
		monthExpenses: d("40"),
		allExpenses:   d("90"),
		custPayments:  d("250"),
		vendPayments:  d("100"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), summary.TotalProducts)
	assert.Equal(t, int64(3), summary.LowStockCount)
	assert.True(t, summary.CurrentMonthSales.Equal(d("300")))
	assert.True(t, summary.CurrentMonthPurchases.Equal(d("500")))
	assert.True(t, summary.CurrentMonthExpenses.Equal(d("40")))
	// Caja: 250 recibidos − 100 pagados − 90 gastados = 60
	assert.True(t, summary.CashInHand.Equal(d("60")), "caja = %s", summary.CashInHand)
	assert.NotEmpty(t, summary.DateLabel)
}

func TestDashboard_SinMovimientoDevuelveCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalProducts)
	assert.True(t, summary.CurrentMonthSales.IsZero())
	assert.True(t, summary.CashInHand.IsZero())
}

func TestDashboard_ErrorDeRepositorioSePropaga(t *testing.T) {
	repoErr := errors.New("db caída")
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{err: repoErr})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
