package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kardexapp/kardex-api/internal/application/analytics"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/application/usecase"
	"github.com/kardexapp/kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/kardexapp/kardex-api/internal/interfaces/http"
	"github.com/kardexapp/kardex-api/pkg/config"
	"github.com/kardexapp/kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	transactionUC := transaction.NewCreateTransactionUseCase(
		txRunner, productRepo, customerRepo, vendorRepo, transactionRepo,
	)
	paymentUC := transaction.NewCreatePaymentUseCase(
		txRunner, customerRepo, vendorRepo, paymentRepo,
	)
	ledgerUC := transaction.NewLedgerUseCase(
		customerRepo, vendorRepo, transactionRepo, paymentRepo,
	)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransactionUC: transactionUC,
		PaymentUC:     paymentUC,
		LedgerUC:      ledgerUC,
		DashboardUC:   dashboardUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		VendorUC:      vendorUC,
		ExpenseUC:     expenseUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
