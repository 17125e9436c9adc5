package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes. El saldo no se edita aquí:
// solo lo mueven transacciones y pagos.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente con saldo cero.
func (uc *CustomerUseCase) Create(in dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CounterpartyResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(page dto.PageRequest) (*dto.CounterpartyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CounterpartyListResponse{
		Items: make([]dto.CounterpartyResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range list {
		out.Items = append(out.Items, *toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
	}
}

// VendorUseCase casos de uso para proveedores; misma disciplina que clientes.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create crea un proveedor con saldo cero.
func (uc *VendorUseCase) Create(in dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *VendorUseCase) GetByID(id string) (*dto.CounterpartyResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores con paginación.
func (uc *VendorUseCase) List(page dto.PageRequest) (*dto.CounterpartyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CounterpartyListResponse{
		Items: make([]dto.CounterpartyResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, v := range list {
		out.Items = append(out.Items, *toVendorResponse(v))
	}
	return out, nil
}

func toVendorResponse(v *entity.Vendor) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{
		ID:        v.ID,
		Name:      v.Name,
		TaxID:     v.TaxID,
		Email:     v.Email,
		Phone:     v.Phone,
		Balance:   v.Balance,
		CreatedAt: v.CreatedAt,
	}
}
