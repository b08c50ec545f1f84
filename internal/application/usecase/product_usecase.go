package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
	"github.com/tu-usuario/ventas-api/pkg/textutil"
)

// ProductUseCase casos de uso del catálogo de productos. Las lecturas resuelven
// la vista de precios según el rol del usuario autenticado.
type ProductUseCase struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int64
	log               *logger.Logger
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, lowStockThreshold int64, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, lowStockThreshold: lowStockThreshold, log: log}
}

func validateProductInput(in dto.CreateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.PriceClient.IsNegative() ||
		in.PriceWholesale.IsNegative() || in.PriceTechnician.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta un producto en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(in.Name),
		Description:       in.Description,
		Stock:             in.Stock,
		Condition:         in.Condition,
		Cost:              in.Cost,
		PriceClient:       in.PriceClient,
		PriceWholesale:    in.PriceWholesale,
		PriceTechnician:   in.PriceTechnician,
		ProviderID:        in.ProviderID,
		EntryDate:         in.EntryDate,
		WarrantyExpiresOn: in.WarrantyExpiresOn,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return toProductResponse(product), nil
}

// Get retorna la vista del producto según rol: admin ve costo y las tres listas
// de precios; el resto recibe un único precio resuelto.
func (uc *ProductUseCase) Get(id, role string) (interface{}, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if role == entity.RoleAdmin {
		return toProductResponse(product), nil
	}
	return toRolePricedResponse(product, role), nil
}

// Update modifica los datos de un producto existente.
func (uc *ProductUseCase) Update(id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Stock = in.Stock
	product.Condition = in.Condition
	product.Cost = in.Cost
	product.PriceClient = in.PriceClient
	product.PriceWholesale = in.PriceWholesale
	product.PriceTechnician = in.PriceTechnician
	product.ProviderID = in.ProviderID
	product.EntryDate = in.EntryDate
	product.WarrantyExpiresOn = in.WarrantyExpiresOn
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateImage asocia la ruta de una imagen ya subida al producto.
func (uc *ProductUseCase) UpdateImage(id string, in dto.UpdateImageRequest) error {
	if in.ImagePath == "" {
		return domain.ErrInvalidInput
	}
	return uc.productRepo.UpdateImagePath(id, in.ImagePath)
}

// Deactivate baja lógica: el producto deja de aparecer en listados pero las
// ventas históricas que lo referencian se conservan.
func (uc *ProductUseCase) Deactivate(id string) error {
	if err := uc.productRepo.Deactivate(id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto desactivado")
	return nil
}

// List lista productos paginados con búsqueda y orden. La forma de cada
// elemento depende del rol del usuario que consulta.
func (uc *ProductUseCase) List(role string, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.Normalize()
	products, total, err := uc.productRepo.List(repository.ListProductsParams{
		Search:            textutil.FoldSearch(in.Search),
		OnlyLowStock:      in.LowStock,
		LowStockThreshold: uc.lowStockThreshold,
		StockOrder:        normalizeOrder(in.StockOrder),
		PriceOrder:        normalizeOrder(in.PriceOrder),
		Limit:             in.Limit,
		Offset:            in.Offset(),
	})
	if err != nil {
		return nil, err
	}

	pagination := dto.NewPagination(total, in.Page, in.Limit)
	if role == entity.RoleAdmin {
		out := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			out = append(out, *toProductResponse(p))
		}
		return &dto.ProductListResponse{Data: out, Pagination: pagination}, nil
	}
	out := make([]dto.RolePricedProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toRolePricedResponse(p, role))
	}
	return &dto.ProductListResponse{Data: out, Pagination: pagination}, nil
}

// normalizeOrder acepta solo ASC/DESC; cualquier otro valor se ignora.
func normalizeOrder(order string) string {
	switch strings.ToUpper(strings.TrimSpace(order)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	default:
		return ""
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Stock:             p.Stock,
		Condition:         p.Condition,
		Cost:              p.Cost,
		PriceClient:       p.PriceClient,
		PriceWholesale:    p.PriceWholesale,
		PriceTechnician:   p.PriceTechnician,
		ProviderID:        p.ProviderID,
		ProviderName:      p.ProviderName,
		ImagePath:         p.ImagePath,
		EntryDate:         p.EntryDate,
		WarrantyExpiresOn: p.WarrantyExpiresOn,
		IsActive:          p.IsActive,
	}
}

func toRolePricedResponse(p *entity.Product, role string) *dto.RolePricedProductResponse {
	return &dto.RolePricedProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Stock:        p.Stock,
		Condition:    p.Condition,
		Price:        p.PriceForRole(role),
		ImagePath:    p.ImagePath,
		ProviderName: p.ProviderName,
	}
}
