package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos operativos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	List(limit, offset int) ([]*entity.Expense, error)
}
