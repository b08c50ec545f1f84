package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	ProviderUC     *usecase.ProviderUseCase
	CustomerUC     *usecase.CustomerUseCase
	SaleUC         *sales.SaleUseCase
	WarrantyUC     *usecase.WarrantyUseCase
	QuoteUC        *usecase.QuoteUseCase
	InvoiceUC      *billing.InvoiceUseCase
	PDFUC          *billing.PDFUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo para admins autenticados.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products: lecturas para cualquier rol, mutaciones solo admin.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Put("/:id/image", adminOnly, productHandler.UpdateImage)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)

	// Providers (solo admin)
	providers := protected.Group("/providers", adminOnly)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", providerHandler.Create)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Put("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Warranties
	warranties := protected.Group("/warranties")
	warrantyHandler := NewWarrantyHandler(deps.WarrantyUC)
	warranties.Post("/", warrantyHandler.Create)
	warranties.Get("/", warrantyHandler.List)
	warranties.Get("/:id", warrantyHandler.GetByID)
	warranties.Put("/:id", warrantyHandler.Update)
	warranties.Patch("/:id/status", warrantyHandler.UpdateStatus)
	warranties.Delete("/:id", warrantyHandler.Delete)

	// Quotes
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Get("/:id/pdf", quoteHandler.PDF)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)

	// Invoices (solo admin)
	invoices := protected.Group("/invoices", adminOnly)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/from-sale/:saleId", invoiceHandler.GenerateFromSale)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Reports (solo admin)
	reports := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/sales", reportHandler.Sales)
}
