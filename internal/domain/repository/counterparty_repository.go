package repository

import (
	"github.com/shopspring/decimal"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
// Balance solo debe mutarse vía UpdateBalance dentro de la transacción que lo origina.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByName(name string) (*entity.Customer, error)
	// GetForUpdate bloquea la fila del cliente (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Customer, error)
	UpdateBalance(id string, balance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Customer, error)
}

// VendorRepository puerto de persistencia para proveedores; misma disciplina que clientes.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	GetByName(name string) (*entity.Vendor, error)
	GetForUpdate(id string) (*entity.Vendor, error)
	UpdateBalance(id string, balance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Vendor, error)
}
