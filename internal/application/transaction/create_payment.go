package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// CreatePaymentUseCase registra un abono contra el saldo de una contraparte con la
// misma disciplina atómica del procesador: delta de saldo (con chequeo de sobrepago),
// consecutivo y registro del pago, todo en una transacción SQL.
type CreatePaymentUseCase struct {
	txRunner     PaymentTxRunner
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	paymentRepo  repository.PaymentRepository
}

// NewCreatePaymentUseCase construye el caso de uso.
func NewCreatePaymentUseCase(
	txRunner PaymentTxRunner,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	paymentRepo repository.PaymentRepository,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		paymentRepo:  paymentRepo,
	}
}

// Create valida y confirma el pago. Invariantes: Amount > 0 y el saldo resultante
// nunca es negativo (un pago no puede exceder la deuda viva). PreviousBalance y
// NewBalance quedan como snapshot del momento de aplicación.
func (uc *CreatePaymentUseCase) Create(ctx context.Context, userID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	prefix, ok := ledger.PrefixForPaymentType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	counterpartyID := ""
	switch in.Type {
	case entity.PaymentTypeCustomer:
		if in.CustomerID == "" || in.VendorID != "" {
			return nil, domain.ErrInvalidInput
		}
		counterpartyID = in.CustomerID
	case entity.PaymentTypeVendor:
		if in.VendorID == "" || in.CustomerID != "" {
			return nil, domain.ErrInvalidInput
		}
		counterpartyID = in.VendorID
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	var result *entity.BalancePayment

	err := uc.txRunner.RunPayment(ctx, func(
		customerRepo repository.CustomerRepository,
		vendorRepo repository.VendorRepository,
		paymentRepo repository.PaymentRepository,
		seqRepo repository.SequenceRepository,
	) error {
		payment := &entity.BalancePayment{
			ID:        uuid.New().String(),
			Type:      in.Type,
			Amount:    in.Amount,
			Notes:     in.Notes,
			Date:      date,
			CreatedAt: now,
			CreatedBy: userID,
		}

		// 1) Delta de saldo bajo lock de fila: nuevo saldo = anterior − monto.
		// Un resultado negativo se rechaza: no existe el sobrepago.
		switch in.Type {
		case entity.PaymentTypeCustomer:
			locked, err := customerRepo.GetForUpdate(counterpartyID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			payment.CustomerID = locked.ID
			payment.CustomerName = locked.Name
			payment.PreviousBalance = locked.Balance
			payment.NewBalance = locked.Balance.Sub(in.Amount)
			if payment.NewBalance.IsNegative() {
				return domain.ErrOverpayment
			}
			if err := customerRepo.UpdateBalance(locked.ID, payment.NewBalance); err != nil {
				return err
			}
		case entity.PaymentTypeVendor:
			locked, err := vendorRepo.GetForUpdate(counterpartyID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			payment.VendorID = locked.ID
			payment.VendorName = locked.Name
			payment.PreviousBalance = locked.Balance
			payment.NewBalance = locked.Balance.Sub(in.Amount)
			if payment.NewBalance.IsNegative() {
				return domain.ErrOverpayment
			}
			if err := vendorRepo.UpdateBalance(locked.ID, payment.NewBalance); err != nil {
				return err
			}
		}

		// 2) Consecutivo CPAY/VPAY por el mismo asignador que las transacciones
		serial, err := seqRepo.Next(prefix, date.Year(), int(date.Month()))
		if err != nil {
			return err
		}
		payment.InvoiceNumber = ledger.FormatInvoiceNumber(prefix, date, serial)

		// 3) Registro del pago con el snapshot de saldos
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPaymentResponse(result), nil
}

// List lista pagos con filtros opcionales de tipo, contraparte y fechas.
func (uc *CreatePaymentUseCase) List(ctx context.Context, paymentType, counterpartyID string, from, to *time.Time, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	page.DefaultPage()
	if paymentType != "" {
		if _, ok := ledger.PrefixForPaymentType(paymentType); !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.paymentRepo.List(repository.PaymentFilter{
		Type:           paymentType,
		CounterpartyID: counterpartyID,
		From:           from,
		To:             to,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	resp := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range list {
		resp.Items = append(resp.Items, *toPaymentResponse(p))
	}
	return resp, nil
}

func toPaymentResponse(p *entity.BalancePayment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:              p.ID,
		InvoiceNumber:   p.InvoiceNumber,
		Type:            p.Type,
		CustomerID:      p.CustomerID,
		CustomerName:    p.CustomerName,
		VendorID:        p.VendorID,
		VendorName:      p.VendorName,
		Amount:          p.Amount,
		PreviousBalance: p.PreviousBalance,
		NewBalance:      p.NewBalance,
		Notes:           p.Notes,
		Date:            p.Date,
	}
}
