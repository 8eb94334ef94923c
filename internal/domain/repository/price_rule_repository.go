package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// PriceRuleRepository define el puerto de lectura para PriceRule (DIP).
type PriceRuleRepository interface {
	// FilterByOrg devuelve todas las reglas de precio de una organización,
	// sin orden garantizado. Es la carga masiva del motor de resolución.
	FilterByOrg(ctx context.Context, orgID int64) ([]entity.PriceRule, error)
	// ListByOrg devuelve las reglas ordenadas por product_id, lifecycle_id
	// y category_id (orden del listado de precios por organización).
	ListByOrg(ctx context.Context, orgID int64) ([]entity.PriceRule, error)
}
