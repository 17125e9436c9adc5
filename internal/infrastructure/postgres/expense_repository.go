package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto operativo.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	query := `
		INSERT INTO expenses (id, description, amount, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Amount,
		expense.Date, expense.CreatedAt, nullIfEmpty(expense.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List lista gastos con paginación, del más reciente al más antiguo.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, amount, date, created_at, created_by
		FROM expenses ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.CreatedBy = derefOrEmpty(createdBy)
		list = append(list, &e)
	}
	return list, rows.Err()
}
