package repository

import (
	"context"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para Category (DIP).
// El motor carga la tabla completa una vez por lote; no hay mutaciones.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
