package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// BuyerProductRepository puerto de lectura para los datos extendidos
// comprador-producto.
type BuyerProductRepository interface {
	// Get devuelve el registro extendido o nil si no existe (no es error).
	Get(ctx context.Context, orgID, productID int64) (*entity.BuyerProduct, error)
}
