package transaction

import (
	"context"
	"time"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// LedgerUseCase reconstruye el estado de cuenta de una contraparte: lectura pura
// sobre transacciones y pagos confirmados, sin estado entre llamadas. Dos llamadas
// con los mismos argumentos y sin escrituras intermedias producen la misma salida.
type LedgerUseCase struct {
	customerRepo    repository.CustomerRepository
	vendorRepo      repository.VendorRepository
	transactionRepo repository.TransactionRepository
	paymentRepo     repository.PaymentRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	transactionRepo repository.TransactionRepository,
	paymentRepo repository.PaymentRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		customerRepo:    customerRepo,
		vendorRepo:      vendorRepo,
		transactionRepo: transactionRepo,
		paymentRepo:     paymentRepo,
	}
}

// Build arma el estado de cuenta por nombre de contraparte y rol, con rango de
// fechas inclusivo opcional. Tipos relevantes por rol: sale/return para cliente,
// purchase/return para proveedor; los pagos del tipo correspondiente siempre entran.
func (uc *LedgerUseCase) Build(ctx context.Context, name, role string, from, to *time.Time) (*dto.LedgerResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	var counterpartyID, counterpartyName string
	var txTypes []string
	var paymentType string

	switch role {
	case entity.RoleCustomer:
		customer, err := uc.customerRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		counterpartyID = customer.ID
		counterpartyName = customer.Name
		txTypes = []string{entity.TransactionTypeSale, entity.TransactionTypeReturn}
		paymentType = entity.PaymentTypeCustomer
	case entity.RoleVendor:
		vendor, err := uc.vendorRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		counterpartyID = vendor.ID
		counterpartyName = vendor.Name
		txTypes = []string{entity.TransactionTypePurchase, entity.TransactionTypeReturn}
		paymentType = entity.PaymentTypeVendor
	default:
		return nil, domain.ErrInvalidInput
	}

	transactions, err := uc.transactionRepo.List(repository.TransactionFilter{
		Types:          txTypes,
		Role:           role,
		CounterpartyID: counterpartyID,
		From:           from,
		To:             to,
	})
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.List(repository.PaymentFilter{
		Type:           paymentType,
		CounterpartyID: counterpartyID,
		From:           from,
		To:             to,
	})
	if err != nil {
		return nil, err
	}

	entries := ledger.Build(role, transactions, payments)

	resp := &dto.LedgerResponse{
		CounterpartyID:   counterpartyID,
		CounterpartyName: counterpartyName,
		Role:             role,
		Entries:          make([]dto.LedgerEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.LedgerEntryResponse{
			Date:          e.Date.Format("2006-01-02"),
			InvoiceNumber: e.InvoiceNumber,
			Kind:          e.Kind,
			Description:   e.Description,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Balance:       e.Balance,
		})
	}
	if n := len(entries); n > 0 {
		resp.ClosingBalance = entries[n-1].Balance
	}
	return resp, nil
}
