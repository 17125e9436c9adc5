package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ transaction.TxRunner = (*TxRunner)(nil)
var _ transaction.PaymentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El consecutivo se incrementa dentro de la misma tx: si fn falla, el Rollback también
// revierte el contador y no quedan huecos en la numeración.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	transactionRepo repository.TransactionRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	customerRepo := NewCustomerRepository(tx)
	vendorRepo := NewVendorRepository(tx)
	transactionRepo := NewTransactionRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(productRepo, customerRepo, vendorRepo, transactionRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia una transacción con los repos del camino de pagos.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerRepo := NewCustomerRepository(tx)
	vendorRepo := NewVendorRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(customerRepo, vendorRepo, paymentRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
