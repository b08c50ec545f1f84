package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-api/internal/application/billing"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)
var _ billing.TxRunner = (*TxRunner)(nil)
var _ usecase.QuoteTxRunner = (*TxRunner)(nil)
var _ usecase.MaintenanceTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia una transacción con los repos del subsistema de ventas atados a
// ella y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewSaleRepository(q), NewStockRepository(q), NewProductRepository(q))
	})
}

// RunBilling inicia una transacción para generar facturas desde ventas.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewInvoiceRepository(q), NewSaleRepository(q))
	})
}

// RunQuotes inicia una transacción para mutaciones de cotizaciones.
func (r *TxRunner) RunQuotes(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewQuoteRepository(q))
	})
}

// RunMaintenance inicia una transacción para la generación de notificaciones
// de sistema.
func (r *TxRunner) RunMaintenance(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warrantyRepo repository.WarrantyRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewProductRepository(q), NewWarrantyRepository(q), NewNotificationRepository(q))
	})
}
