package postgres

import (
	"context"
	"fmt"

	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo asignador de consecutivos sobre PostgreSQL. Debe usarse con el
// Querier de la transacción del documento: el lock de fila del UPDATE serializa
// a los asignadores concurrentes del mismo (prefijo, año, mes) y un rollback de
// la transacción revierte también el incremento.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el asignador. Pasar la tx del documento (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo de (prefix, year, month) en un único
// statement atómico. La primera llamada del mes crea el contador en 1.
func (r *SequenceRepo) Next(prefix string, year, month int) (int64, error) {
	query := `
		INSERT INTO sequence_counters (prefix, year, month, next_value, updated_at)
		VALUES ($1, $2, $3, 1, now())
		ON CONFLICT (prefix, year, month)
		DO UPDATE SET next_value = sequence_counters.next_value + 1, updated_at = now()
		RETURNING next_value`
	var serial int64
	err := r.q.QueryRow(context.Background(), query, prefix, year, month).Scan(&serial)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSequenceAllocation, err)
	}
	return serial, nil
}
