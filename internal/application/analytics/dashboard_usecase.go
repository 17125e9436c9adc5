// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// epochStart límite inferior para las agregaciones acumuladas (caja).
var epochStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// DashboardUseCase genera el resumen del mes en curso y la caja acumulada.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Toda cifra es
// derivada; no toca el estado autoritativo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo:
//  1. CountProducts            → TotalProducts + LowStockCount
//  2. SumTransactions(sale)    → CurrentMonthSales
//  3. SumTransactions(purchase)→ CurrentMonthPurchases
//  4. SumExpenses(mes)         → CurrentMonthExpenses
//  5. Caja: abonos de clientes − pagos a proveedores − gastos (acumulado total)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59.999
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type countResult struct {
		total, lowStock int64
		err             error
	}
	type sumResult struct {
		sum decimal.Decimal
		err error
	}

	productsCh := make(chan countResult, 1)
	salesCh := make(chan sumResult, 1)
	purchasesCh := make(chan sumResult, 1)
	expensesCh := make(chan sumResult, 1)
	cashCh := make(chan sumResult, 1)

	go func() {
		total, lowStock, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{total, lowStock, err}
	}()
	go func() {
		sum, err := uc.analyticsRepo.SumTransactions(ctx, entity.TransactionTypeSale, monthStart, monthEnd)
		salesCh <- sumResult{sum, err}
	}()
	go func() {
		sum, err := uc.analyticsRepo.SumTransactions(ctx, entity.TransactionTypePurchase, monthStart, monthEnd)
		purchasesCh <- sumResult{sum, err}
	}()
	go func() {
		sum, err := uc.analyticsRepo.SumExpenses(ctx, monthStart, monthEnd)
		expensesCh <- sumResult{sum, err}
	}()
	go func() {
		cash, err := uc.cashInHand(ctx, monthEnd)
		cashCh <- sumResult{cash, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	purchases := <-purchasesCh
	expenses := <-expensesCh
	cash := <-cashCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: compras del mes: %w", purchases.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos del mes: %w", expenses.err)
	}
	if cash.err != nil {
		return nil, fmt.Errorf("dashboard: caja: %w", cash.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:         products.total,
		LowStockCount:         products.lowStock,
		CurrentMonthSales:     sales.sum.Round(2),
		CurrentMonthPurchases: purchases.sum.Round(2),
		CurrentMonthExpenses:  expenses.sum.Round(2),
		CashInHand:            cash.sum.Round(2),
		DateLabel:             monthLabel(now),
	}, nil
}

// cashInHand calcula la caja acumulada hasta `until`:
// abonos de clientes − pagos a proveedores − gastos.
func (uc *DashboardUseCase) cashInHand(ctx context.Context, until time.Time) (decimal.Decimal, error) {
	received, err := uc.analyticsRepo.SumPayments(ctx, entity.PaymentTypeCustomer, epochStart, until)
	if err != nil {
		return decimal.Zero, err
	}
	paid, err := uc.analyticsRepo.SumPayments(ctx, entity.PaymentTypeVendor, epochStart, until)
	if err != nil {
		return decimal.Zero, err
	}
	spent, err := uc.analyticsRepo.SumExpenses(ctx, epochStart, until)
	if err != nil {
		return decimal.Zero, err
	}
	return received.Sub(paid).Sub(spent), nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
