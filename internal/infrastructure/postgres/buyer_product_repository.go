package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.BuyerProductRepository = (*BuyerProductRepo)(nil)

// BuyerProductRepo adaptador para los datos extendidos comprador-producto
// (tabla t_product_buyer).
type BuyerProductRepo struct {
	q Querier
}

// NewBuyerProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBuyerProductRepository(q Querier) *BuyerProductRepo {
	return &BuyerProductRepo{q: q}
}

// Get devuelve el registro extendido o nil si no existe.
func (r *BuyerProductRepo) Get(ctx context.Context, orgID, productID int64) (*entity.BuyerProduct, error) {
	query := `
		SELECT id, org_id, product_id, COALESCE(sku, ''), COALESCE(notes, '')
		FROM t_product_buyer WHERE org_id = $1 AND product_id = $2`
	var bp entity.BuyerProduct
	err := r.q.QueryRow(ctx, query, orgID, productID).Scan(
		&bp.ID, &bp.OrgID, &bp.ProductID, &bp.SKU, &bp.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get buyer product: %w", err)
	}
	return &bp, nil
}
