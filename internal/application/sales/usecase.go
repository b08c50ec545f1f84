package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// SaleUseCase orquesta crear/actualizar/eliminar ventas con ajuste atómico de
// stock. Cada operación es un único intento transaccional: bloquea las filas de
// stock involucradas (SELECT FOR UPDATE), aplica los cambios y hace Commit, o
// Rollback completo sin efectos parciales.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewSaleUseCase construye el caso de uso. saleRepo (sobre el pool) se usa
// solo para lecturas fuera de transacción.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, log: log}
}

// validateInput rechaza entradas inválidas antes de abrir cualquier transacción:
// lista de items vacía, cantidades no positivas o precios negativos.
func validateInput(in dto.SaleInput) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// buildItems calcula item_total por renglón y el total de la venta.
func buildItems(saleID string, in []dto.SaleItemInput) ([]entity.SaleItem, decimal.Decimal) {
	items := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			ItemTotal: entity.ComputeItemTotal(it.Quantity, it.UnitPrice),
		})
	}
	return items, entity.ComputeSaleTotal(items)
}

// Create registra una venta: por cada renglón bloquea y lee el stock, verifica
// disponibilidad, inserta venta y renglones y descuenta stock. Si algún
// producto no alcanza, retorna *domain.StockError y nada queda escrito.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleInput) (*dto.SaleResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	saleID := uuid.New().String()
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		// 1) Bloquear y verificar stock de cada producto antes de escribir nada.
		// El lock de fila serializa ventas concurrentes sobre el mismo producto.
		for _, item := range in.Items {
			available, err := stockRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if available < item.Quantity {
				name := ""
				if p, perr := productRepo.GetByID(item.ProductID); perr == nil && p != nil {
					name = p.Name
				}
				return &domain.StockError{
					ProductID:   item.ProductID,
					ProductName: name,
					Available:   available,
					Requested:   item.Quantity,
				}
			}
		}

		// 2) Insertar cabecera y renglones.
		items, total := buildItems(saleID, in.Items)
		sale := &entity.Sale{
			ID:          saleID,
			CustomerID:  in.CustomerID,
			Notes:       in.Notes,
			TotalAmount: total,
			SaleDate:    now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range items {
			if err := saleRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}

		// 3) Descontar stock.
		for _, item := range in.Items {
			if err := stockRepo.Adjust(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("sale_id", saleID).Int("items", len(in.Items)).Msg("venta registrada")
	return uc.Get(ctx, saleID)
}

// Update reemplaza el conjunto de renglones de una venta: primero revierte el
// stock de los renglones originales, luego aplica los nuevos descuentos, todo
// en una transacción.
//
// A diferencia de Create, este camino no re-valida disponibilidad antes de
// descontar (comportamiento heredado: el stock puede quedar negativo si los
// nuevos renglones exceden lo disponible). Cambiarlo es una decisión de
// producto, no un default de ingeniería.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.SaleInput) (*dto.SaleResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		existing, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		// 1) Revertir la reserva de stock de cada renglón original, exactamente una vez.
		for _, item := range existing.Items {
			if _, err := stockRepo.GetForUpdate(item.ProductID); err != nil {
				return err
			}
			if err := stockRepo.Adjust(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		// 2) Eliminar renglones anteriores.
		if err := saleRepo.DeleteItems(id); err != nil {
			return err
		}

		// 3) Actualizar cabecera con el nuevo total.
		items, total := buildItems(id, in.Items)
		existing.CustomerID = in.CustomerID
		existing.Notes = in.Notes
		existing.TotalAmount = total
		if err := saleRepo.UpdateHeader(existing); err != nil {
			return err
		}

		// 4) Insertar nuevos renglones y descontar stock.
		for i := range items {
			if err := saleRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		for _, item := range in.Items {
			if _, err := stockRepo.GetForUpdate(item.ProductID); err != nil {
				return err
			}
			if err := stockRepo.Adjust(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("sale_id", id).Int("items", len(in.Items)).Msg("venta actualizada")
	return uc.Get(ctx, id)
}

// Delete elimina una venta restaurando el stock de todos sus renglones.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		existing, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		for _, item := range existing.Items {
			if _, err := stockRepo.GetForUpdate(item.ProductID); err != nil {
				return err
			}
			if err := stockRepo.Adjust(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := saleRepo.DeleteItems(id); err != nil {
			return err
		}
		return saleRepo.Delete(id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("sale_id", id).Msg("venta eliminada")
	return nil
}
