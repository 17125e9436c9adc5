package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, tax_id, email, phone, balance, created_at, updated_at`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	var taxID, email, phone *string
	err := row.Scan(&v.ID, &v.Name, &taxID, &email, &phone, &v.Balance, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.TaxID = derefOrEmpty(taxID)
	v.Email = derefOrEmpty(email)
	v.Phone = derefOrEmpty(phone)
	return &v, nil
}

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vendors (id, name, tax_id, email, phone, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, nullIfEmpty(vendor.TaxID), nullIfEmpty(vendor.Email),
		nullIfEmpty(vendor.Phone), vendor.Balance, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// GetByName obtiene un proveedor por nombre.
func (r *VendorRepo) GetByName(name string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE name = $1`
	v, err := scanVendor(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor by name: %w", err)
	}
	return v, nil
}

// GetForUpdate bloquea la fila del proveedor (SELECT FOR UPDATE) dentro de una tx.
func (r *VendorRepo) GetForUpdate(id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 FOR UPDATE`
	v, err := scanVendor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor for update: %w", err)
	}
	return v, nil
}

// UpdateBalance fija el saldo del proveedor dentro de la transacción que originó el delta.
func (r *VendorRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendors SET balance = $2, updated_at = now() WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update vendor balance: %w", err)
	}
	return nil
}

// List lista proveedores con paginación, ordenados por nombre.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
