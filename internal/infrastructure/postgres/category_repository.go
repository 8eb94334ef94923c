package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List carga la tabla completa de categorías (una vez por lote de resolución).
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT id, COALESCE(parent_id, 0), name_en, COALESCE(name_zh, '')
		FROM t_category ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.ParentID, &c.NameEN, &c.NameZH); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
