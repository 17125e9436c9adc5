package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// entornoLedger ejecuta el flujo completo compra → venta → abono → devolución
// contra el almacén fake y devuelve el caso de uso de ledger sobre ese estado.
func entornoLedger(t *testing.T) (*fakeStore, *transaction.LedgerUseCase) {
	t.Helper()
	store, txUC := entorno(t, 0)
	payUC := transaction.NewCreatePaymentUseCase(
		&fakeTxRunner{s: store},
		&fakeCustomerRepo{s: store},
		&fakeVendorRepo{s: store},
		&fakePaymentRepo{s: store},
	)
	ctx := context.Background()

	// Compra 50 @ 10 al proveedor; venta 20 @ 15 al cliente; abono 100; devolución 5 @ 15
	_, err := txUC.Create(ctx, testUserID, dto.CreateTransactionRequest{
		Type:     entity.TransactionTypePurchase,
		VendorID: testVendorID,
		Items:    []dto.TransactionItemRequest{{ProductID: testProductID, Quantity: 50, Price: d("10")}},
	})
	require.NoError(t, err)
	_, err = txUC.Create(ctx, testUserID, dto.CreateTransactionRequest{
		Type:       entity.TransactionTypeSale,
		CustomerID: testCustomerID,
		Items:      []dto.TransactionItemRequest{{ProductID: testProductID, Quantity: 20, Price: d("15")}},
	})
	require.NoError(t, err)
	_, err = payUC.Create(ctx, testUserID, dto.CreatePaymentRequest{
		Type:       entity.PaymentTypeCustomer,
		CustomerID: testCustomerID,
		Amount:     d("100"),
	})
	require.NoError(t, err)
	_, err = txUC.Create(ctx, testUserID, dto.CreateTransactionRequest{
		Type:       entity.TransactionTypeReturn,
		CustomerID: testCustomerID,
		Items:      []dto.TransactionItemRequest{{ProductID: testProductID, Quantity: 5, Price: d("15")}},
	})
	require.NoError(t, err)

	ledgerUC := transaction.NewLedgerUseCase(
		&fakeCustomerRepo{s: store},
		&fakeVendorRepo{s: store},
		&fakeTransactionRepo{s: store},
		&fakePaymentRepo{s: store},
	)
	return store, ledgerUC
}

// El estado de cuenta del cliente contiene venta, abono y devolución (no la compra)
// y su saldo de cierre reproduce exactamente el saldo almacenado: replay del log
// de eventos == estado vivo.
func TestLedger_ClienteReplayReproduceSaldo(t *testing.T) {
	store, uc := entornoLedger(t)

	resp, err := uc.Build(context.Background(), "C1", entity.RoleCustomer, nil, nil)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 3, "venta + abono + devolución; la compra no pertenece al cliente")
	assert.True(t, resp.ClosingBalance.Equal(d("125")), "300 − 100 − 75")
	assert.True(t, resp.ClosingBalance.Equal(store.customers[testCustomerID].Balance),
		"el replay reproduce el saldo almacenado")
}

// El estado de cuenta del proveedor solo ve la compra.
func TestLedger_ProveedorSoloVeCompras(t *testing.T) {
	store, uc := entornoLedger(t)

	resp, err := uc.Build(context.Background(), "V1", entity.RoleVendor, nil, nil)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, entity.TransactionTypePurchase, resp.Entries[0].Kind)
	assert.True(t, resp.ClosingBalance.Equal(d("500")))
	assert.True(t, resp.ClosingBalance.Equal(store.vendors[testVendorID].Balance))
}

// Dos reconstrucciones sin escrituras intermedias son idénticas entrada a entrada.
func TestLedger_Reproducible(t *testing.T) {
	_, uc := entornoLedger(t)
	ctx := context.Background()

	a, err := uc.Build(ctx, "C1", entity.RoleCustomer, nil, nil)
	require.NoError(t, err)
	b, err := uc.Build(ctx, "C1", entity.RoleCustomer, nil, nil)
	require.NoError(t, err)

	require.Equal(t, len(a.Entries), len(b.Entries))
	for i := range a.Entries {
		assert.Equal(t, a.Entries[i], b.Entries[i])
	}
}

func TestLedger_Validaciones(t *testing.T) {
	_, uc := entornoLedger(t)
	ctx := context.Background()

	_, err := uc.Build(ctx, "", entity.RoleCustomer, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre requerido")

	_, err = uc.Build(ctx, "C1", "accountant", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido")

	_, err = uc.Build(ctx, "Nadie", entity.RoleCustomer, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El rango de fechas es inclusivo en ambos extremos: los movimientos del día
// `to` entran cuando el límite llega hasta el último instante de ese día.
func TestLedger_RangoDeFechasInclusivo(t *testing.T) {
	_, uc := entornoLedger(t)
	ctx := context.Background()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	resp, err := uc.Build(ctx, "C1", entity.RoleCustomer, &from, &to)
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 3, "venta, abono y devolución de hoy")

	// Con el límite en la medianoche de ayer no entra nada
	ayer := from.Add(-time.Nanosecond)
	resp, err = uc.Build(ctx, "C1", entity.RoleCustomer, nil, &ayer)
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
}
