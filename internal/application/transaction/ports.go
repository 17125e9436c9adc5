package transaction

import (
	"context"

	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza la atomicidad del procesador de transacciones: o todos
// los efectos (saldo, consecutivo, documento, stock) quedan confirmados, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		vendorRepo repository.VendorRepository,
		transactionRepo repository.TransactionRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// PaymentTxRunner variante para el camino de pagos (saldo + consecutivo + registro).
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		vendorRepo repository.VendorRepository,
		paymentRepo repository.PaymentRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
