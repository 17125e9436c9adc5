package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// ExpenseUseCase registro y listado de gastos operativos. Un gasto solo alimenta
// la caja del dashboard; no toca stock ni saldos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Amount debe ser positivo.
func (uc *ExpenseUseCase) Create(userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos con paginación.
func (uc *ExpenseUseCase) List(page dto.PageRequest) (*dto.ExpenseListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ExpenseListResponse{
		Items: make([]dto.ExpenseResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range list {
		out.Items = append(out.Items, *toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
	}
}
