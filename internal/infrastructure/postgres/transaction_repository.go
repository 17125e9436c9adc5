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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, invoice_number, type, customer_id, customer_name, vendor_id, vendor_name, total_amount, date, created_at, created_by`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var customerID, customerName, vendorID, vendorName, createdBy *string
	err := row.Scan(&t.ID, &t.InvoiceNumber, &t.Type, &customerID, &customerName,
		&vendorID, &vendorName, &t.TotalAmount, &t.Date, &t.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	t.CustomerID = derefOrEmpty(customerID)
	t.CustomerName = derefOrEmpty(customerName)
	t.VendorID = derefOrEmpty(vendorID)
	t.VendorName = derefOrEmpty(vendorName)
	t.CreatedBy = derefOrEmpty(createdBy)
	return &t, nil
}

// Create persiste el encabezado de una transacción. El invoice_number es único a
// nivel de BD: una colisión se reporta como ErrDuplicate.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, invoice_number, type, customer_id, customer_name, vendor_id, vendor_name, total_amount, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.InvoiceNumber, tx.Type,
		nullIfEmpty(tx.CustomerID), nullIfEmpty(tx.CustomerName),
		nullIfEmpty(tx.VendorID), nullIfEmpty(tx.VendorName),
		tx.TotalAmount, tx.Date, tx.CreatedAt, nullIfEmpty(tx.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la transacción. Se invoca en la misma tx que Create.
func (r *TransactionRepo) CreateItem(item *entity.TransactionItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transaction_items (id, transaction_id, line_no, product_id, product_name, quantity, price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.LineNo, item.ProductID, item.ProductName,
		item.Quantity, item.Price, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert transaction item: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción (sin líneas). Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// GetItemsByTransactionID obtiene las líneas de una transacción en su orden de captura.
func (r *TransactionRepo) GetItemsByTransactionID(transactionID string) ([]*entity.TransactionItem, error) {
	query := `
		SELECT id, transaction_id, line_no, product_id, product_name, quantity, price, total_price
		FROM transaction_items WHERE transaction_id = $1 ORDER BY line_no ASC`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var items []*entity.TransactionItem
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.LineNo, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.Price, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista transacciones según el filtro, ordenadas por fecha y número de documento
// ascendente (el mismo orden total que usa la reconstrucción del estado de cuenta).
func (r *TransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any
	pos := 1

	if len(filter.Types) > 0 {
		query += fmt.Sprintf(" AND type = ANY($%d)", pos)
		args = append(args, filter.Types)
		pos++
	}
	if filter.CounterpartyID != "" {
		switch filter.Role {
		case entity.RoleVendor:
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
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
