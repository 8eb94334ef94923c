package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para Product (DIP).
// Lee la vista v_product (producto + nombres de categoría y ciclo de vida).
type ProductRepository interface {
	// QueryByIDs devuelve los productos cuyos IDs existen; los IDs no
	// encontrados simplemente no aparecen en el resultado.
	QueryByIDs(ctx context.Context, ids []int64) ([]entity.Product, error)
	// ListByCategory lista productos con paginación; categoryID == 0 lista
	// todo el catálogo.
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]entity.Product, error)
}
