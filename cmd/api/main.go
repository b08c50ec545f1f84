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
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/ventas-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	warrantyRepo := postgres.NewWarrantyRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, cfg.App.LowStockThreshold, log)
	providerUC := usecase.NewProviderUseCase(providerRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, log)
	warrantyUC := usecase.NewWarrantyUseCase(warrantyRepo)
	quoteUC := usecase.NewQuoteUseCase(txRunner, quoteRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, log)
	notificationUC := usecase.NewNotificationUseCase(txRunner, notifRepo, userRepo, cfg.App.LowStockThreshold, log)
	reportUC := usecase.NewReportUseCase(productRepo, saleRepo, cfg.App.LowStockThreshold)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, quoteRepo, pdfGenerator, pdfGenerator)

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
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		ProviderUC:     providerUC,
		CustomerUC:     customerUC,
		SaleUC:         saleUC,
		WarrantyUC:     warrantyUC,
		QuoteUC:        quoteUC,
		InvoiceUC:      invoiceUC,
		PDFUC:          pdfUC,
		NotificationUC: notificationUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
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
