package repository

import (
	"time"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// TransactionFilter filtros opcionales para listados y reconstrucción de ledger.
// CounterpartyID aplica sobre customer_id o vendor_id según Role.
type TransactionFilter struct {
	Types          []string
	Role           string
	CounterpartyID string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// TransactionRepository puerto de persistencia para transacciones y sus líneas.
// Create y CreateItem se invocan siempre dentro de la misma transacción SQL.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	CreateItem(item *entity.TransactionItem) error
	GetByID(id string) (*entity.Transaction, error)
	GetItemsByTransactionID(transactionID string) ([]*entity.TransactionItem, error)
	List(filter TransactionFilter) ([]*entity.Transaction, error)
}

// PaymentFilter filtros para pagos contra saldo.
type PaymentFilter struct {
	Type           string
	CounterpartyID string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// PaymentRepository puerto de persistencia para pagos contra saldo.
type PaymentRepository interface {
	Create(payment *entity.BalancePayment) error
	GetByID(id string) (*entity.BalancePayment, error)
	List(filter PaymentFilter) ([]*entity.BalancePayment, error)
}
