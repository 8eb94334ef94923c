package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Lee la vista v_product (producto + nombres de categoría y ciclo de vida).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, sku, name_en, category_id, COALESCE(category_en, ''),
	COALESCE(lifecycle_id, 0), COALESCE(lifecycle_en, ''), list_price_us`

// QueryByIDs devuelve los productos pedidos; los IDs inexistentes no
// aparecen en el resultado.
func (r *ProductRepo) QueryByIDs(ctx context.Context, ids []int64) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM v_product WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return scanProducts(rows)
}

// ListByCategory lista productos con paginación; categoryID == 0 lista todo.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM v_product
		WHERE ($1 = 0 OR category_id = $1)
		ORDER BY id ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.NameEN, &p.CategoryID, &p.CategoryEN,
			&p.LifecycleID, &p.LifecycleEN, &p.ListPriceUS); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
