package pricing

import "github.com/jhoicas/Precios-api/internal/domain/entity"

// RuleIndex organiza las reglas de precio de una organización para consulta
// por producto exacto y por categoría. Se construye una vez por lote y es
// de solo lectura; seguro para lecturas concurrentes.
type RuleIndex struct {
	byProduct  map[int64]*entity.PriceRule
	byCategory map[int64][]*entity.PriceRule
}

// NewRuleIndex indexa las reglas de una organización.
func NewRuleIndex(rules []entity.PriceRule) *RuleIndex {
	idx := &RuleIndex{
		byProduct:  make(map[int64]*entity.PriceRule),
		byCategory: make(map[int64][]*entity.PriceRule),
	}
	for i := range rules {
		r := &rules[i]
		if r.IsProductScoped() {
			idx.byProduct[r.ProductID] = r
			continue
		}
		if r.CategoryID != 0 {
			idx.byCategory[r.CategoryID] = append(idx.byCategory[r.CategoryID], r)
		}
	}
	return idx
}

// ByProduct devuelve la regla con alcance de producto exacto, o nil.
func (idx *RuleIndex) ByProduct(productID int64) *entity.PriceRule {
	return idx.byProduct[productID]
}

// ByCategory devuelve las reglas con alcance exactamente en esa categoría.
// No filtra por ciclo de vida; eso lo decide el resolutor.
func (idx *RuleIndex) ByCategory(categoryID int64) []*entity.PriceRule {
	return idx.byCategory[categoryID]
}

// Empty indica si la organización no tiene ninguna regla.
func (idx *RuleIndex) Empty() bool {
	return len(idx.byProduct) == 0 && len(idx.byCategory) == 0
}
