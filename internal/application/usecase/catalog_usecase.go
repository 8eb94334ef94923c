package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

// CatalogUseCase consultas de catálogo: categorías decoradas con su ruta,
// listado de productos y datos extendidos comprador-producto.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	buyerInfo  repository.BuyerProductRepository
	log        *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	buyerInfo repository.BuyerProductRepository,
	log *logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categories: categories,
		products:   products,
		buyerInfo:  buyerInfo,
		log:        log,
	}
}

// ListCategories devuelve el listado plano de categorías, cada una decorada
// con su ruta raíz→hoja. Usa la misma caminata (y las mismas guardas contra
// ciclos y padres colgantes) que el motor de precios.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar categorías")
		return nil, fmt.Errorf("listar categorías: %w", err)
	}

	tree := pricing.NewCategoryTree(categories)
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.ToCategoryResponse(c, tree.Path(c.ID)))
	}
	return &dto.CategoryListResponse{Items: items, Total: len(items)}, nil
}

// ListProducts lista productos con paginación; categoryID == 0 lista todo.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, categoryID int64, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.products.ListByCategory(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		uc.log.Error().Err(err).Int64("category_id", categoryID).Msg("listar productos")
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// BuyerProductInfo devuelve los datos extendidos comprador-producto.
// Sin registro devuelve el objeto vacío, no error.
func (uc *CatalogUseCase) BuyerProductInfo(ctx context.Context, orgID, productID int64) (*dto.BuyerProductResponse, error) {
	info, err := uc.buyerInfo.Get(ctx, orgID, productID)
	if err != nil {
		uc.log.Error().Err(err).Int64("org_id", orgID).Int64("product_id", productID).
			Msg("datos extendidos comprador-producto")
		return nil, fmt.Errorf("datos comprador-producto: %w", err)
	}
	if info == nil {
		return &dto.BuyerProductResponse{}, nil
	}
	return &dto.BuyerProductResponse{
		ID:        info.ID,
		OrgID:     info.OrgID,
		ProductID: info.ProductID,
		SKU:       info.SKU,
		Notes:     info.Notes,
	}, nil
}
