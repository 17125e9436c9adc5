package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// Entry una fila del estado de cuenta: documento, débito/crédito y saldo acumulado.
type Entry struct {
	Date          time.Time
	InvoiceNumber string
	Kind          string // sale, purchase, return, customer_payment, vendor_payment
	Description   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Balance       decimal.Decimal // saldo acumulado después de esta entrada
}

// Build reconstruye el estado de cuenta de una contraparte a partir de sus
// transacciones y pagos ya filtrados por rol y rango de fechas.
//
// Asignación débito/crédito por tipo:
//   - sale     → débito (rol customer)
//   - purchase → débito (rol vendor)
//   - return   → crédito (en ambos roles)
//   - pago     → crédito siempre
//
// Orden: fecha ascendente; a igual fecha desempata el número de documento
// ascendente, de modo que dos reconstrucciones con los mismos datos producen
// exactamente la misma secuencia. El fold acumula saldo += débito − crédito.
// No guarda estado entre llamadas: cada invocación recalcula desde las fuentes.
func Build(role string, transactions []*entity.Transaction, payments []*entity.BalancePayment) []Entry {
	entries := make([]Entry, 0, len(transactions)+len(payments))

	for _, tx := range transactions {
		e := Entry{
			Date:          tx.Date,
			InvoiceNumber: tx.InvoiceNumber,
			Kind:          tx.Type,
			Description:   describeTransaction(tx, role),
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}
		if tx.Type == entity.TransactionTypeReturn {
			e.Credit = tx.TotalAmount
		} else {
			e.Debit = tx.TotalAmount
		}
		entries = append(entries, e)
	}

	for _, p := range payments {
		entries = append(entries, Entry{
			Date:          p.Date,
			InvoiceNumber: p.InvoiceNumber,
			Kind:          p.Type,
			Description:   "Abono recibido",
			Debit:         decimal.Zero,
			Credit:        p.Amount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].InvoiceNumber < entries[j].InvoiceNumber
	})

	running := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = running
	}
	return entries
}

func describeTransaction(tx *entity.Transaction, role string) string {
	switch tx.Type {
	case entity.TransactionTypeSale:
		return "Venta"
	case entity.TransactionTypePurchase:
		return "Compra"
	case entity.TransactionTypeReturn:
		if role == entity.RoleVendor {
			return "Devolución a proveedor"
		}
		return "Devolución de cliente"
	}
	return tx.Type
}
