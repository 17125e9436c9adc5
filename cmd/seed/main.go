// seed puebla la base con datos de demostración: productos, un cliente y un
// proveedor, una compra inicial, una venta y un abono. También imprime un token
// JWT de prueba para consumir la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/application/usecase"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/infrastructure/postgres"
	"github.com/kardexapp/kardex-api/pkg/config"
	"github.com/kardexapp/kardex-api/pkg/jwt"
)

const seedUserID = "00000000-0000-0000-0000-0000000000aa"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	transactionUC := transaction.NewCreateTransactionUseCase(
		txRunner, productRepo, customerRepo, vendorRepo, transactionRepo,
	)
	paymentUC := transaction.NewCreatePaymentUseCase(
		txRunner, customerRepo, vendorRepo, paymentRepo,
	)

	// Maestros
	widget, err := productUC.Create(dto.CreateProductRequest{
		Name:              "Widget estándar",
		Description:       "Producto de demostración",
		Price:             decimal.NewFromInt(15),
		LowStockThreshold: 10,
	})
	if err != nil {
		fail("crear producto", err)
	}
	customer, err := customerUC.Create(dto.CreateCounterpartyRequest{
		Name:  "Comercial Andina",
		TaxID: "900123456-7",
		Email: "compras@andina.example",
	})
	if err != nil {
		fail("crear cliente", err)
	}
	vendor, err := vendorUC.Create(dto.CreateCounterpartyRequest{
		Name:  "Distribuciones del Norte",
		TaxID: "800987654-3",
	})
	if err != nil {
		fail("crear proveedor", err)
	}

	// Compra inicial: 100 unidades a $10
	purchase, err := transactionUC.Create(ctx, seedUserID, dto.CreateTransactionRequest{
		Type:     entity.TransactionTypePurchase,
		VendorID: vendor.ID,
		Items: []dto.TransactionItemRequest{
			{ProductID: widget.ID, Quantity: 100, Price: decimal.NewFromInt(10)},
		},
	})
	if err != nil {
		fail("registrar compra", err)
	}

	// Venta: 20 unidades al precio de lista
	sale, err := transactionUC.Create(ctx, seedUserID, dto.CreateTransactionRequest{
		Type:       entity.TransactionTypeSale,
		CustomerID: customer.ID,
		Items: []dto.TransactionItemRequest{
			{ProductID: widget.ID, Quantity: 20},
		},
	})
	if err != nil {
		fail("registrar venta", err)
	}

	// Abono parcial del cliente
	payment, err := paymentUC.Create(ctx, seedUserID, dto.CreatePaymentRequest{
		Type:       entity.PaymentTypeCustomer,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(100),
		Notes:      "abono inicial",
	})
	if err != nil {
		fail("registrar abono", err)
	}

	fmt.Println("Datos de demostración creados:")
	fmt.Printf("  producto   %s  (%s)\n", widget.Name, widget.ID)
	fmt.Printf("  cliente    %s  (%s)\n", customer.Name, customer.ID)
	fmt.Printf("  proveedor  %s  (%s)\n", vendor.Name, vendor.ID)
	fmt.Printf("  compra     %s\n", purchase.InvoiceNumber)
	fmt.Printf("  venta      %s\n", sale.InvoiceNumber)
	fmt.Printf("  abono      %s\n", payment.InvoiceNumber)

	if cfg.JWT.Secret != "" {
		token, err := jwt.Generate(cfg.JWT.Secret, seedUserID, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fail("generar token", err)
		}
		fmt.Printf("\nToken de prueba:\n  Authorization: Bearer %s\n", token)
	}
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
