package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, invoice_number, type, customer_id, customer_name, vendor_id, vendor_name, amount, previous_balance, new_balance, notes, date, created_at, created_by`

func scanPayment(row pgx.Row) (*entity.BalancePayment, error) {
	var p entity.BalancePayment
	var customerID, customerName, vendorID, vendorName, notes, createdBy *string
	err := row.Scan(&p.ID, &p.InvoiceNumber, &p.Type, &customerID, &customerName,
		&vendorID, &vendorName, &p.Amount, &p.PreviousBalance, &p.NewBalance,
		&notes, &p.Date, &p.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	p.CustomerID = derefOrEmpty(customerID)
	p.CustomerName = derefOrEmpty(customerName)
	p.VendorID = derefOrEmpty(vendorID)
	p.VendorName = derefOrEmpty(vendorName)
	p.Notes = derefOrEmpty(notes)
	p.CreatedBy = derefOrEmpty(createdBy)
	return &p, nil
}

// Create persiste un pago aplicado, con los snapshots de saldo anterior y nuevo.
func (r *PaymentRepo) Create(payment *entity.BalancePayment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO balance_payments (id, invoice_number, type, customer_id, customer_name, vendor_id, vendor_name, amount, previous_balance, new_balance, notes, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceNumber, payment.Type,
		nullIfEmpty(payment.CustomerID), nullIfEmpty(payment.CustomerName),
		nullIfEmpty(payment.VendorID), nullIfEmpty(payment.VendorName),
		payment.Amount, payment.PreviousBalance, payment.NewBalance,
		nullIfEmpty(payment.Notes), payment.Date, payment.CreatedAt, nullIfEmpty(payment.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago. Devuelve (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.BalancePayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM balance_payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List lista pagos según el filtro, en el mismo orden total que la reconstrucción
// del estado de cuenta.
func (r *PaymentRepo) List(filter repository.PaymentFilter) ([]*entity.BalancePayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM balance_payments WHERE 1=1`
	var args []any
	pos := 1

	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.CounterpartyID != "" {
		switch filter.Type {
		case entity.PaymentTypeVendor:
			query += fmt.Sprintf(" AND vendor_id = $%d", pos)
		default:
			query += fmt.Sprintf(" AND customer_id = $%d", pos)
		}
		args = append(args, filter.CounterpartyID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY date ASC, invoice_number ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.BalancePayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
