package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// CreateTransactionUseCase procesa un evento de negocio (venta, compra o devolución)
// como unidad atómica: valida, aplica el delta de saldo de la contraparte, asigna el
// consecutivo, persiste cabecera y líneas, y aplica los deltas de stock. Todo dentro
// de una sola transacción SQL vía TxRunner; cualquier fallo revierte el conjunto.
type CreateTransactionUseCase struct {
	txRunner        TxRunner
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	vendorRepo      repository.VendorRepository
	transactionRepo repository.TransactionRepository
}

// NewCreateTransactionUseCase construye el caso de uso. Los repos sueltos se usan
// solo para lecturas fuera de la transacción.
func NewCreateTransactionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	transactionRepo repository.TransactionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		txRunner:        txRunner,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		vendorRepo:      vendorRepo,
		transactionRepo: transactionRepo,
	}
}

// Create valida y confirma la transacción. El total siempre se calcula aquí a partir
// de las líneas; nunca se confía en un total enviado por el caller.
func (uc *CreateTransactionUseCase) Create(ctx context.Context, userID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	prefix, ok := ledger.PrefixForTransactionType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Venta referencia cliente, compra referencia proveedor; devolución admite uno u
	// otro (o ninguno). Nunca ambos.
	if in.CustomerID != "" && in.VendorID != "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.TransactionTypeSale:
		if in.VendorID != "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.TransactionTypePurchase:
		if in.CustomerID != "" {
			return nil, domain.ErrInvalidInput
		}
	}

	// Resolver contraparte (lectura fuera de la tx; el saldo se relee con lock adentro)
	var customer *entity.Customer
	var vendor *entity.Vendor
	var err error
	if in.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(in.CustomerID)
		if err != nil || customer == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.VendorID != "" {
		vendor, err = uc.vendorRepo.GetByID(in.VendorID)
		if err != nil || vendor == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Validar productos y precios. Chequeo optimista de stock para ventas; se
	// revalida bajo lock de fila al aplicar los deltas.
	productsByID := make(map[string]*entity.Product)
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
		if item.Price.IsZero() {
			in.Items[i].Price = product.Price
		}
		if in.Type == entity.TransactionTypeSale && item.Quantity > product.Quantity {
			return nil, domain.ErrInsufficientStock
		}
	}

	// Total autoritativo: suma de cantidad × precio unitario
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(decimal.NewFromInt(item.Quantity).Mul(item.Price))
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	transactionID := uuid.New().String()
	var result *entity.Transaction

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		vendorRepo repository.VendorRepository,
		transactionRepo repository.TransactionRepository,
		seqRepo repository.SequenceRepository,
	) error {
		// 1) Delta de saldo de la contraparte. Venta/compra suman el total,
		// devolución lo resta. Sin piso: una devolución puede dejar el saldo en
		// negativo (dinero a favor de la contraparte) y eso es aceptado; solo los
		// pagos rechazan saldos negativos.
		delta := total
		if in.Type == entity.TransactionTypeReturn {
			delta = total.Neg()
		}
		if customer != nil {
			locked, err := customerRepo.GetForUpdate(customer.ID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if err := customerRepo.UpdateBalance(locked.ID, locked.Balance.Add(delta)); err != nil {
				return err
			}
		}
		if vendor != nil {
			locked, err := vendorRepo.GetForUpdate(vendor.ID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if err := vendorRepo.UpdateBalance(locked.ID, locked.Balance.Add(delta)); err != nil {
				return err
			}
		}

		// 2) Consecutivo del documento. Si el contador falla, toda la unidad se
		// revierte: no existe número de documento sin transacción confirmada.
		serial, err := seqRepo.Next(prefix, date.Year(), int(date.Month()))
		if err != nil {
			return err
		}
		invoiceNumber := ledger.FormatInvoiceNumber(prefix, date, serial)

		// 3) Cabecera y líneas. Los nombres se capturan como snapshot de display.
		tx := &entity.Transaction{
			ID:            transactionID,
			InvoiceNumber: invoiceNumber,
			Type:          in.Type,
			TotalAmount:   total,
			Date:          date,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if customer != nil {
			tx.CustomerID = customer.ID
			tx.CustomerName = customer.Name
		}
		if vendor != nil {
			tx.VendorID = vendor.ID
			tx.VendorName = vendor.Name
		}
		if err := transactionRepo.Create(tx); err != nil {
			return err
		}
		for i, item := range in.Items {
			product := productsByID[item.ProductID]
			line := &entity.TransactionItem{
				ID:            uuid.New().String(),
				TransactionID: tx.ID,
				LineNo:        i + 1,
				ProductID:     product.ID,
				ProductName:   product.Name,
				Quantity:      item.Quantity,
				Price:         item.Price,
				TotalPrice:    decimal.NewFromInt(item.Quantity).Mul(item.Price),
			}
			if err := transactionRepo.CreateItem(line); err != nil {
				return err
			}
			tx.Items = append(tx.Items, line)
		}

		// 4) Deltas de stock bajo lock de fila: compra y devolución suman,
		// venta resta. Cantidad negativa aborta la unidad completa.
		for _, item := range in.Items {
			locked, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			newQuantity := locked.Quantity + item.Quantity
			if in.Type == entity.TransactionTypeSale {
				newQuantity = locked.Quantity - item.Quantity
			}
			if newQuantity < 0 {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateQuantity(locked.ID, newQuantity); err != nil {
				return err
			}
		}

		result = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(result), nil
}

// GetByID obtiene una transacción con sus líneas.
func (uc *CreateTransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.transactionRepo.GetItemsByTransactionID(id)
	if err != nil {
		return nil, err
	}
	tx.Items = items
	return toTransactionResponse(tx), nil
}

// List lista transacciones sin líneas, con filtros opcionales de tipo y fechas.
func (uc *CreateTransactionUseCase) List(ctx context.Context, txType string, from, to *time.Time, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	filter := repository.TransactionFilter{
		From:   from,
		To:     to,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if txType != "" {
		if _, ok := ledger.PrefixForTransactionType(txType); !ok {
			return nil, domain.ErrInvalidInput
		}
		filter.Types = []string{txType}
	}
	list, err := uc.transactionRepo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, tx := range list {
		resp.Items = append(resp.Items, *toTransactionResponse(tx))
	}
	return resp, nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:            tx.ID,
		InvoiceNumber: tx.InvoiceNumber,
		Type:          tx.Type,
		CustomerID:    tx.CustomerID,
		CustomerName:  tx.CustomerName,
		VendorID:      tx.VendorID,
		VendorName:    tx.VendorName,
		TotalAmount:   tx.TotalAmount,
		Date:          tx.Date,
		Items:         make([]dto.TransactionItemResponse, 0, len(tx.Items)),
	}
	for _, item := range tx.Items {
		resp.Items = append(resp.Items, dto.TransactionItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
