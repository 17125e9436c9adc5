package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Quantity solo debe mutarse vía UpdateQuantity dentro de la transacción del procesador.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
