package dto

import "github.com/shopspring/decimal"

// LedgerEntryResponse una fila del estado de cuenta reconstruido.
type LedgerEntryResponse struct {
	Date          string          `json:"date"` // yyyy-mm-dd
	InvoiceNumber string          `json:"invoice_number"`
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerResponse estado de cuenta completo de una contraparte.
type LedgerResponse struct {
	CounterpartyID   string                `json:"counterparty_id"`
	CounterpartyName string                `json:"counterparty_name"`
	Role             string                `json:"role"` // customer | vendor
	Entries          []LedgerEntryResponse `json:"entries"`
	ClosingBalance   decimal.Decimal       `json:"closing_balance"`
}
