package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardexapp/kardex-api/internal/application/analytics"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransactionUC *transaction.CreateTransactionUseCase
	PaymentUC     *transaction.CreatePaymentUseCase
	LedgerUC      *transaction.LedgerUseCase
	DashboardUC   *analytics.DashboardUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	VendorUC      *usecase.VendorUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Toda la API va detrás del Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Transacciones (venta, compra, devolución)
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Pagos contra saldo
	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)

	// Estado de cuenta
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Get("/ledger", ledgerHandler.Get)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	// Maestros
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)

	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
}
