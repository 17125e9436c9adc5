package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Agregación derivada sobre transacciones, pagos y gastos; nunca estado autoritativo.
type DashboardSummaryDTO struct {
	TotalProducts int64 `json:"total_products"`
	LowStockCount int64 `json:"low_stock_count"` // productos en o bajo su umbral

	// Métricas del mes en curso (día 1 – hoy)
	CurrentMonthSales     decimal.Decimal `json:"current_month_sales"`
	CurrentMonthPurchases decimal.Decimal `json:"current_month_purchases"`
	CurrentMonthExpenses  decimal.Decimal `json:"current_month_expenses"`

	// Caja acumulada: abonos de clientes − pagos a proveedores − gastos
	CashInHand decimal.Decimal `json:"cash_in_hand"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}
