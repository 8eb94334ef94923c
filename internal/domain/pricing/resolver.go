package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// Resolver decide, por producto, la mejor regla aplicable y calcula el
// precio efectivo. Puro y sin estado mutable: un Resolver puede usarse
// desde cualquier número de goroutines a la vez.
//
// Precedencia de reglas:
//  1. Regla por producto exacto: gana siempre, sin mirar categorías.
//  2. Reglas por categoría, subiendo la cadena de ancestros nivel a nivel.
//     En cada nivel se prefiere la regla cuyo ciclo de vida coincide con el
//     del producto; si no hay, una regla sin restricción de ciclo de vida.
//     Una regla restringida a un ciclo de vida distinto nunca coincide.
//     El ascenso termina en el primer nivel con alguna coincidencia: la
//     cercanía de nivel manda sobre la especificidad entre niveles.
type Resolver struct {
	tree  *CategoryTree
	rules *RuleIndex
}

// NewResolver construye el resolutor sobre el árbol y el índice del lote.
func NewResolver(tree *CategoryTree, rules *RuleIndex) *Resolver {
	return &Resolver{tree: tree, rules: rules}
}

// Resolve calcula el precio efectivo de un producto. Siempre devuelve un
// resultado completo: sin regla aplicable, el precio es el de lista.
func (r *Resolver) Resolve(p entity.Product) entity.ResolvedPrice {
	rule := r.match(p)
	resolved := entity.ResolvedPrice{
		ProductID:         p.ID,
		ProductCategoryID: p.CategoryID,
		ListPrice:         p.ListPriceUS,
		Price:             p.ListPriceUS,
	}
	if rule == nil {
		return resolved
	}

	resolved.PriceRuleID = rule.ID
	resolved.PercentDiscount = rule.Discount
	resolved.DiscountPrice = rule.DiscountPrice
	resolved.Price = apply(rule.Modifier(), p.ListPriceUS)
	return resolved
}

// match busca la mejor regla para el producto, o nil si ninguna aplica.
func (r *Resolver) match(p entity.Product) *entity.PriceRule {
	if rule := r.rules.ByProduct(p.ID); rule != nil {
		return rule
	}
	for _, categoryID := range r.tree.AncestorChain(p.CategoryID) {
		if rule := matchAtLevel(r.rules.ByCategory(categoryID), p.LifecycleID); rule != nil {
			return rule
		}
	}
	return nil
}

// matchAtLevel elige la regla de un mismo nivel de categoría: primero la
// específica del ciclo de vida del producto, después una sin restricción.
func matchAtLevel(candidates []*entity.PriceRule, lifecycleID int64) *entity.PriceRule {
	if lifecycleID != 0 {
		for _, rule := range candidates {
			if rule.LifecycleID == lifecycleID {
				return rule
			}
		}
	}
	for _, rule := range candidates {
		if rule.LifecycleID == 0 {
			return rule
		}
	}
	return nil
}

// apply calcula el precio efectivo según el modificador. El resultado nunca
// es negativo aunque los datos traigan descuentos mayores al 100%.
func apply(mod entity.PriceModifier, listPrice decimal.Decimal) decimal.Decimal {
	var price decimal.Decimal
	switch mod.Kind {
	case entity.ModifierFlatOverride:
		price = mod.Amount
	case entity.ModifierPercentOff:
		price = listPrice.Sub(mod.Amount.Div(cien).Mul(listPrice))
	default:
		price = listPrice
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
