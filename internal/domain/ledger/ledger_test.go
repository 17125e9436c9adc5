package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func fecha(day int, hour int) time.Time {
	return time.Date(2026, time.August, day, hour, 0, 0, 0, time.UTC)
}

func tx(txType, invoice string, date time.Time, total string) *entity.Transaction {
	return &entity.Transaction{
		InvoiceNumber: invoice,
		Type:          txType,
		TotalAmount:   d(total),
		Date:          date,
	}
}

func pago(payType, invoice string, date time.Time, amount string) *entity.BalancePayment {
	return &entity.BalancePayment{
		InvoiceNumber: invoice,
		Type:          payType,
		Amount:        d(amount),
		Date:          date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatInvoiceNumber
// ──────────────────────────────────────────────────────────────────────────────

// El número de documento codifica prefijo, fecha y serial con padding a 3 dígitos.
func TestFormatInvoiceNumber_Vectores(t *testing.T) {
	date := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "PUR20260828001", ledger.FormatInvoiceNumber("PUR", date, 1))
	assert.Equal(t, "INV20260828042", ledger.FormatInvoiceNumber("INV", date, 42))
	assert.Equal(t, "RET20260828999", ledger.FormatInvoiceNumber("RET", date, 999))
	// Por encima de 999 el serial crece sin truncarse
	assert.Equal(t, "CPAY202608281000", ledger.FormatInvoiceNumber("CPAY", date, 1000))
}

func TestPrefixForTransactionType(t *testing.T) {
	casos := map[string]string{
		entity.TransactionTypeSale:     entity.PrefixSale,
		entity.TransactionTypePurchase: entity.PrefixPurchase,
		entity.TransactionTypeReturn:   entity.PrefixReturn,
	}
	for txType, want := range casos {
		got, ok := ledger.PrefixForTransactionType(txType)
		require.True(t, ok, "tipo %s debe tener prefijo", txType)
		assert.Equal(t, want, got)
	}
	_, ok := ledger.PrefixForTransactionType("transfer")
	assert.False(t, ok, "tipo desconocido no debe tener prefijo")
}

func TestPrefixForPaymentType(t *testing.T) {
	got, ok := ledger.PrefixForPaymentType(entity.PaymentTypeCustomer)
	require.True(t, ok)
	assert.Equal(t, entity.PrefixCustomerPayment, got)

	got, ok = ledger.PrefixForPaymentType(entity.PaymentTypeVendor)
	require.True(t, ok)
	assert.Equal(t, entity.PrefixVendorPayment, got)

	_, ok = ledger.PrefixForPaymentType("sale")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Build: fold de saldo acumulado
// ──────────────────────────────────────────────────────────────────────────────

// Estado de cuenta de cliente: venta debita, devolución y abono acreditan.
// Venta 300 → abono 100 → devolución 75 ⇒ saldos 300, 200, 125.
func TestBuild_ClienteVentaAbonoDevolucion(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionTypeSale, "INV20260810001", fecha(10, 9), "300"),
		tx(entity.TransactionTypeReturn, "RET20260820001", fecha(20, 9), "75"),
	}
	payments := []*entity.BalancePayment{
		pago(entity.PaymentTypeCustomer, "CPAY20260815001", fecha(15, 9), "100"),
	}

	entries := ledger.Build(entity.RoleCustomer, transactions, payments)
	require.Len(t, entries, 3)

	assert.Equal(t, "INV20260810001", entries[0].InvoiceNumber)
	assert.True(t, entries[0].Debit.Equal(d("300")))
	assert.True(t, entries[0].Balance.Equal(d("300")), "saldo tras la venta")

	assert.Equal(t, "CPAY20260815001", entries[1].InvoiceNumber)
	assert.True(t, entries[1].Credit.Equal(d("100")))
	assert.True(t, entries[1].Balance.Equal(d("200")), "saldo tras el abono")

	assert.Equal(t, "RET20260820001", entries[2].InvoiceNumber)
	assert.True(t, entries[2].Credit.Equal(d("75")))
	assert.True(t, entries[2].Balance.Equal(d("125")), "saldo tras la devolución")
}

// Estado de cuenta de proveedor: la compra debita (lo que debemos) y el pago acredita.
func TestBuild_ProveedorCompraYPago(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionTypePurchase, "PUR20260805001", fecha(5, 10), "500"),
	}
	payments := []*entity.BalancePayment{
		pago(entity.PaymentTypeVendor, "VPAY20260812001", fecha(12, 10), "500"),
	}

	entries := ledger.Build(entity.RoleVendor, transactions, payments)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Debit.Equal(d("500")))
	assert.True(t, entries[1].Balance.IsZero(), "el pago total deja el saldo en cero")
}

// Una devolución puede dejar el saldo acumulado en negativo; el fold no aplica piso.
func TestBuild_DevolucionPuedeDejarSaldoNegativo(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionTypeSale, "INV20260810001", fecha(10, 9), "100"),
		tx(entity.TransactionTypeReturn, "RET20260820001", fecha(20, 9), "150"),
	}

	entries := ledger.Build(entity.RoleCustomer, transactions, nil)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Balance.Equal(d("-50")),
		"una devolución mayor que el saldo lo deja negativo, por diseño")
}

// A igual fecha, el desempate es por número de documento ascendente:
// la reconstrucción es determinista aunque transacción y pago compartan timestamp.
func TestBuild_DesempatePorNumeroDeDocumento(t *testing.T) {
	same := fecha(15, 12)
	transactions := []*entity.Transaction{
		tx(entity.TransactionTypeSale, "INV20260815002", same, "50"),
		tx(entity.TransactionTypeSale, "INV20260815001", same, "30"),
	}
	payments := []*entity.BalancePayment{
		pago(entity.PaymentTypeCustomer, "CPAY20260815001", same, "20"),
	}

	entries := ledger.Build(entity.RoleCustomer, transactions, payments)
	require.Len(t, entries, 3)
	// Orden lexicográfico: CPAY... < INV...001 < INV...002
	assert.Equal(t, "CPAY20260815001", entries[0].InvoiceNumber)
	assert.Equal(t, "INV20260815001", entries[1].InvoiceNumber)
	assert.Equal(t, "INV20260815002", entries[2].InvoiceNumber)
	assert.True(t, entries[2].Balance.Equal(d("60")))
}

// Reconstruir dos veces con las mismas fuentes produce secuencias idénticas.
func TestBuild_Idempotente(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionTypeSale, "INV20260810001", fecha(10, 9), "300"),
		tx(entity.TransactionTypeReturn, "RET20260820001", fecha(20, 9), "75"),
	}
	payments := []*entity.BalancePayment{
		pago(entity.PaymentTypeCustomer, "CPAY20260815001", fecha(15, 9), "100"),
	}

	a := ledger.Build(entity.RoleCustomer, transactions, payments)
	b := ledger.Build(entity.RoleCustomer, transactions, payments)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].InvoiceNumber, b[i].InvoiceNumber)
		assert.True(t, a[i].Balance.Equal(b[i].Balance))
	}
}

func TestBuild_SinMovimientos(t *testing.T) {
	entries := ledger.Build(entity.RoleCustomer, nil, nil)
	assert.Empty(t, entries)
}
