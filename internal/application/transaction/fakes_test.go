package transaction_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica de transacción: el runner ejecuta el callback
// sobre una copia y solo la publica si el callback no falla. Un error descarta la
// copia completa, igual que un ROLLBACK.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products     map[string]*entity.Product
	customers    map[string]*entity.Customer
	vendors      map[string]*entity.Vendor
	transactions map[string]*entity.Transaction
	items        []*entity.TransactionItem
	payments     map[string]*entity.BalancePayment
	sequences    map[string]int64
	seqErr       error // fuerza fallo del contador para probar atomicidad
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:     map[string]*entity.Product{},
		customers:    map[string]*entity.Customer{},
		vendors:      map[string]*entity.Vendor{},
		transactions: map[string]*entity.Transaction{},
		payments:     map[string]*entity.BalancePayment{},
		sequences:    map[string]int64{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.seqErr = s.seqErr
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.vendors {
		cp := *v
		c.vendors[k] = &cp
	}
	for k, v := range s.transactions {
		cp := *v
		c.transactions[k] = &cp
	}
	c.items = append(c.items, s.items...)
	for k, v := range s.payments {
		cp := *v
		c.payments[k] = &cp
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	return c
}

func (s *fakeStore) replaceWith(c *fakeStore) {
	s.products = c.products
	s.customers = c.customers
	s.vendors = c.vendors
	s.transactions = c.transactions
	s.items = c.items
	s.payments = c.payments
	s.sequences = c.sequences
}

// ──────────────────────────────────────────────────────────────────────────────
// Repos fake sobre el almacén
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByName(name string) (*entity.Customer, error) {
	for _, c := range r.s.customers {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *fakeCustomerRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = balance
	return nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeVendorRepo struct{ s *fakeStore }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error {
	cp := *v
	r.s.vendors[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) GetByName(name string) (*entity.Vendor, error) {
	for _, v := range r.s.vendors {
		if v.Name == name {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetForUpdate(id string) (*entity.Vendor, error) {
	return r.GetByID(id)
}

func (r *fakeVendorRepo) UpdateBalance(id string, balance decimal.Decimal) error {
	v, ok := r.s.vendors[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Balance = balance
	return nil
}

func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.s.vendors {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTransactionRepo struct{ s *fakeStore }

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	for _, existing := range r.s.transactions {
		if existing.InvoiceNumber == tx.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *tx
	cp.Items = nil
	r.s.transactions[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) CreateItem(item *entity.TransactionItem) error {
	cp := *item
	r.s.items = append(r.s.items, &cp)
	return nil
}

func (r *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) GetItemsByTransactionID(transactionID string) ([]*entity.TransactionItem, error) {
	var out []*entity.TransactionItem
	for _, item := range r.s.items {
		if item.TransactionID == transactionID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

func (r *fakeTransactionRepo) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.s.transactions {
		if !matchesTransaction(tx, filter) {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func matchesTransaction(tx *entity.Transaction, filter repository.TransactionFilter) bool {
	if len(filter.Types) > 0 {
		found := false
		for _, t := range filter.Types {
			if tx.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.CounterpartyID != "" {
		switch filter.Role {
		case entity.RoleCustomer:
			if tx.CustomerID != filter.CounterpartyID {
				return false
			}
		case entity.RoleVendor:
			if tx.VendorID != filter.CounterpartyID {
				return false
			}
		}
	}
	if filter.From != nil && tx.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && tx.Date.After(*filter.To) {
		return false
	}
	return true
}

type fakePaymentRepo struct{ s *fakeStore }

func (r *fakePaymentRepo) Create(p *entity.BalancePayment) error {
	cp := *p
	r.s.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.BalancePayment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) List(filter repository.PaymentFilter) ([]*entity.BalancePayment, error) {
	var out []*entity.BalancePayment
	for _, p := range r.s.payments {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.CounterpartyID != "" && p.CustomerID != filter.CounterpartyID && p.VendorID != filter.CounterpartyID {
			continue
		}
		if filter.From != nil && p.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.Date.After(*filter.To) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeSequenceRepo struct{ s *fakeStore }

func (r *fakeSequenceRepo) Next(prefix string, year, month int) (int64, error) {
	if r.s.seqErr != nil {
		return 0, r.s.seqErr
	}
	key := fmt.Sprintf("%s-%04d-%02d", prefix, year, month)
	r.s.sequences[key]++
	return r.s.sequences[key], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Runner fake con commit/rollback
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	transactionRepo repository.TransactionRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	c := r.s.clone()
	err := fn(
		&fakeProductRepo{s: c},
		&fakeCustomerRepo{s: c},
		&fakeVendorRepo{s: c},
		&fakeTransactionRepo{s: c},
		&fakeSequenceRepo{s: c},
	)
	if err != nil {
		return err // rollback: la copia se descarta
	}
	r.s.replaceWith(c)
	return nil
}

func (r *fakeTxRunner) RunPayment(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	c := r.s.clone()
	err := fn(
		&fakeCustomerRepo{s: c},
		&fakeVendorRepo{s: c},
		&fakePaymentRepo{s: c},
		&fakeSequenceRepo{s: c},
	)
	if err != nil {
		return err
	}
	r.s.replaceWith(c)
	return nil
}
