package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.PriceRuleRepository = (*PriceRuleRepo)(nil)

// PriceRuleRepo implementación del puerto PriceRuleRepository sobre
// PostgreSQL (tabla t_buyer_price).
type PriceRuleRepo struct {
	q Querier
}

// NewPriceRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceRuleRepository(q Querier) *PriceRuleRepo {
	return &PriceRuleRepo{q: q}
}

const priceRuleColumns = `
	id, org_id, COALESCE(product_id, 0), COALESCE(category_id, 0),
	COALESCE(lifecycle_id, 0), discount, discount_price`

// FilterByOrg devuelve todas las reglas de la organización, sin orden
// garantizado (carga masiva del motor).
func (r *PriceRuleRepo) FilterByOrg(ctx context.Context, orgID int64) ([]entity.PriceRule, error) {
	query := `SELECT ` + priceRuleColumns + ` FROM t_buyer_price WHERE org_id = $1`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("filter price rules: %w", err)
	}
	return scanPriceRules(rows)
}

// ListByOrg devuelve las reglas ordenadas por product_id, lifecycle_id y
// category_id (orden del listado histórico por organización).
func (r *PriceRuleRepo) ListByOrg(ctx context.Context, orgID int64) ([]entity.PriceRule, error) {
	query := `SELECT ` + priceRuleColumns + `
		FROM t_buyer_price WHERE org_id = $1
		ORDER BY product_id ASC NULLS LAST, lifecycle_id ASC NULLS LAST, category_id ASC NULLS LAST`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list price rules: %w", err)
	}
	return scanPriceRules(rows)
}

func scanPriceRules(rows pgx.Rows) ([]entity.PriceRule, error) {
	defer rows.Close()
	var list []entity.PriceRule
	for rows.Next() {
		var pr entity.PriceRule
		if err := rows.Scan(&pr.ID, &pr.OrgID, &pr.ProductID, &pr.CategoryID,
			&pr.LifecycleID, &pr.Discount, &pr.DiscountPrice); err != nil {
			return nil, fmt.Errorf("scan price rule: %w", err)
		}
		list = append(list, pr)
	}
	return list, rows.Err()
}
