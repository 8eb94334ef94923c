package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// PriceLookupRequest entrada del lookup por lote: los productos cuyos
// precios quiere conocer la organización.
type PriceLookupRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// ResolvedPriceResponse precio efectivo de un producto para la organización.
// Los campos de la regla van en null cuando ninguna regla aplicó.
type ResolvedPriceResponse struct {
	ProductID         int64            `json:"product_id"`
	ProductCategoryID int64            `json:"product_category_id"`
	ListPrice         decimal.Decimal  `json:"list_price"`
	PriceRuleID       *int64           `json:"price_rule_id"`
	PercentDiscount   *decimal.Decimal `json:"percent_discount"`
	DiscountPrice     *decimal.Decimal `json:"discount_price"`
	Price             decimal.Decimal  `json:"price"`
}

// ToResolvedPriceResponse convierte el resultado del motor al contrato JSON.
func ToResolvedPriceResponse(r entity.ResolvedPrice) ResolvedPriceResponse {
	out := ResolvedPriceResponse{
		ProductID:         r.ProductID,
		ProductCategoryID: r.ProductCategoryID,
		ListPrice:         r.ListPrice,
		Price:             r.Price,
	}
	if r.PriceRuleID != 0 {
		id := r.PriceRuleID
		out.PriceRuleID = &id
	}
	if r.PercentDiscount.Valid {
		d := r.PercentDiscount.Decimal
		out.PercentDiscount = &d
	}
	if r.DiscountPrice.Valid {
		d := r.DiscountPrice.Decimal
		out.DiscountPrice = &d
	}
	return out
}

// PriceRuleResponse una regla de precio en el listado por organización.
type PriceRuleResponse struct {
	ID            int64            `json:"id"`
	OrgID         int64            `json:"org_id"`
	ProductID     *int64           `json:"product_id"`
	CategoryID    *int64           `json:"category_id"`
	LifecycleID   *int64           `json:"lifecycle_id"`
	Discount      *decimal.Decimal `json:"discount"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
}

// PriceRuleListResponse listado de reglas con total (contrato del listado
// de precios por organización).
type PriceRuleListResponse struct {
	Items []PriceRuleResponse `json:"items"`
	Total int                 `json:"total"`
}

// ToPriceRuleResponse convierte la entidad al contrato JSON.
func ToPriceRuleResponse(r entity.PriceRule) PriceRuleResponse {
	out := PriceRuleResponse{ID: r.ID, OrgID: r.OrgID}
	if r.ProductID != 0 {
		v := r.ProductID
		out.ProductID = &v
	}
	if r.CategoryID != 0 {
		v := r.CategoryID
		out.CategoryID = &v
	}
	if r.LifecycleID != 0 {
		v := r.LifecycleID
		out.LifecycleID = &v
	}
	if r.Discount.Valid {
		d := r.Discount.Decimal
		out.Discount = &d
	}
	if r.DiscountPrice.Valid {
		d := r.DiscountPrice.Decimal
		out.DiscountPrice = &d
	}
	return out
}
