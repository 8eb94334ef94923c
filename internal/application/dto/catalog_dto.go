package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// CategoryResponse categoría decorada con su ruta raíz→hoja completa.
type CategoryResponse struct {
	ID       int64   `json:"id"`
	ParentID *int64  `json:"parent_id"`
	NameEN   string  `json:"name_en"`
	NameZH   string  `json:"name_zh,omitempty"`
	Path     []int64 `json:"path"`
}

// CategoryListResponse listado plano de categorías decoradas.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}

// ToCategoryResponse convierte la entidad; path lo decora el caso de uso.
func ToCategoryResponse(c entity.Category, path []int64) CategoryResponse {
	out := CategoryResponse{ID: c.ID, NameEN: c.NameEN, NameZH: c.NameZH, Path: path}
	if c.ParentID != 0 {
		v := c.ParentID
		out.ParentID = &v
	}
	return out
}

// ProductResponse producto del catálogo (proyección de v_product).
type ProductResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	NameEN      string          `json:"name_en"`
	CategoryID  int64           `json:"category_id"`
	CategoryEN  string          `json:"category_en"`
	LifecycleID *int64          `json:"lifecycle_id"`
	LifecycleEN string          `json:"lifecycle_en,omitempty"`
	ListPriceUS decimal.Decimal `json:"list_price_us"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToProductResponse convierte la entidad al contrato JSON.
func ToProductResponse(p entity.Product) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		NameEN:      p.NameEN,
		CategoryID:  p.CategoryID,
		CategoryEN:  p.CategoryEN,
		LifecycleEN: p.LifecycleEN,
		ListPriceUS: p.ListPriceUS,
	}
	if p.LifecycleID != 0 {
		v := p.LifecycleID
		out.LifecycleID = &v
	}
	return out
}

// BuyerProductResponse datos extendidos comprador-producto. Cuando no hay
// registro, la respuesta es el objeto vacío (comportamiento histórico).
type BuyerProductResponse struct {
	ID        int64  `json:"id,omitempty"`
	OrgID     int64  `json:"org_id,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
