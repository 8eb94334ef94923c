package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de prueba:
//
//	1 (raíz)
//	└── 2
//	    └── 3 (hoja)
//
// Los productos cuelgan de la categoría 3 salvo que el test diga otra cosa.
// ──────────────────────────────────────────────────────────────────────────────

func testTree() *pricing.CategoryTree {
	return pricing.NewCategoryTree([]entity.Category{
		{ID: 1, ParentID: 0},
		{ID: 2, ParentID: 1},
		{ID: 3, ParentID: 2},
	})
}

func flat(p string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(p), Valid: true}
}

func producto(id int64, listPrice string) entity.Product {
	return entity.Product{
		ID:          id,
		CategoryID:  3,
		LifecycleID: 0,
		ListPriceUS: decimal.RequireFromString(listPrice),
	}
}

func resolver(rules ...entity.PriceRule) *pricing.Resolver {
	return pricing.NewResolver(testTree(), pricing.NewRuleIndex(rules))
}

func assertPrecio(t *testing.T, esperado string, r entity.ResolvedPrice) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(esperado).Equal(r.Price),
		"precio esperado %s, calculado %s", esperado, r.Price)
}

// Escenario A: organización sin reglas → todo a precio de lista.
func TestResolve_SinReglas_PrecioDeLista(t *testing.T) {
	r := resolver()

	resolved := r.Resolve(producto(100, "49.90"))

	assertPrecio(t, "49.90", resolved)
	assert.Zero(t, resolved.PriceRuleID, "sin regla aplicada el id de regla queda en cero")
	assert.False(t, resolved.PercentDiscount.Valid)
	assert.False(t, resolved.DiscountPrice.Valid)
	assert.Equal(t, int64(100), resolved.ProductID)
	assert.Equal(t, int64(3), resolved.ProductCategoryID)
}

// La regla por producto exacto gana siempre, aunque haya reglas de categoría
// que también coincidirían.
func TestResolve_ReglaPorProductoGanaSiempre(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, ProductID: 100, Discount: pct(5)},
		entity.PriceRule{ID: 2, CategoryID: 3, Discount: pct(50)},
		entity.PriceRule{ID: 3, CategoryID: 1, Discount: pct(50)},
	)

	resolved := r.Resolve(producto(100, "100.00"))

	assert.Equal(t, int64(1), resolved.PriceRuleID,
		"la coincidencia por producto corta la búsqueda por categorías")
	assertPrecio(t, "95", resolved)
}

// Escenario C: descuento porcentual simple.
func TestResolve_DescuentoPorcentual(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 1, CategoryID: 3, Discount: pct(25)})

	resolved := r.Resolve(producto(200, "100.00"))

	assertPrecio(t, "75", resolved)
	assert.Equal(t, int64(1), resolved.PriceRuleID)
	require.True(t, resolved.PercentDiscount.Valid)
	assert.True(t, decimal.NewFromInt(25).Equal(resolved.PercentDiscount.Decimal))
}

// Escenario D: discount_price fija el precio aunque la misma regla traiga
// también porcentaje; el porcentaje se reporta pero no se calcula.
func TestResolve_PrecioFijoTienePrioridad(t *testing.T) {
	r := resolver(entity.PriceRule{
		ID: 1, CategoryID: 3,
		Discount:      pct(25),
		DiscountPrice: flat("60.00"),
	})

	resolved := r.Resolve(producto(300, "100.00"))

	assertPrecio(t, "60.00", resolved)
	require.True(t, resolved.DiscountPrice.Valid)
	require.True(t, resolved.PercentDiscount.Valid,
		"el porcentaje presente en la regla se reporta igual")
	assert.True(t, decimal.NewFromInt(25).Equal(resolved.PercentDiscount.Decimal))
}

// El ascenso por la cadena de ancestros encuentra reglas en niveles
// superiores cuando la hoja no tiene.
func TestResolve_AsciendeHastaEncontrarRegla(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 9, CategoryID: 1, Discount: pct(10)})

	resolved := r.Resolve(producto(400, "50.00"))

	assert.Equal(t, int64(9), resolved.PriceRuleID)
	assertPrecio(t, "45", resolved)
}

// El ascenso se detiene en el primer nivel con coincidencia: las reglas de
// ancestros más arriba nunca se consideran.
func TestResolve_PrimerNivelConReglaDetieneElAscenso(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, CategoryID: 3, Discount: pct(10)},
		entity.PriceRule{ID: 2, CategoryID: 2, Discount: pct(90)},
	)

	resolved := r.Resolve(producto(500, "100.00"))

	assert.Equal(t, int64(1), resolved.PriceRuleID)
	assertPrecio(t, "90", resolved)
}

// En un mismo nivel, la regla específica del ciclo de vida del producto
// le gana a la regla general.
func TestResolve_CicloDeVidaEspecificoGanaEnElMismoNivel(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, CategoryID: 3, Discount: pct(10)},
		entity.PriceRule{ID: 2, CategoryID: 3, LifecycleID: 5, Discount: pct(30)},
	)

	p := producto(600, "100.00")
	p.LifecycleID = 5
	resolved := r.Resolve(p)

	assert.Equal(t, int64(2), resolved.PriceRuleID)
	assertPrecio(t, "70", resolved)
}

// Una regla restringida a un ciclo de vida distinto nunca coincide: ni
// siquiera como respaldo cuando no hay regla general en el nivel.
func TestResolve_CicloDeVidaDistintoNoCoincide(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 1, CategoryID: 3, LifecycleID: 7, Discount: pct(30)})

	p := producto(700, "100.00")
	p.LifecycleID = 5
	resolved := r.Resolve(p)

	assert.Zero(t, resolved.PriceRuleID,
		"la única regla del nivel restringe otro ciclo de vida: no hay coincidencia")
	assertPrecio(t, "100.00", resolved)
}

// Producto sin ciclo de vida: solo coinciden reglas sin restricción.
func TestResolve_ProductoSinCicloDeVida(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, CategoryID: 3, LifecycleID: 5, Discount: pct(30)},
		entity.PriceRule{ID: 2, CategoryID: 3, Discount: pct(10)},
	)

	resolved := r.Resolve(producto(800, "100.00"))

	assert.Equal(t, int64(2), resolved.PriceRuleID)
	assertPrecio(t, "90", resolved)
}

// Escenario B: la categoría cercana con regla general le gana a un ancestro
// con regla específica del ciclo de vida. La cercanía de nivel manda entre
// niveles; la especificidad solo desempata dentro del mismo nivel.
func TestResolve_CercaniaDeNivelMandaSobreEspecificidad(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, CategoryID: 3, Discount: pct(20)},
		entity.PriceRule{ID: 2, CategoryID: 1, LifecycleID: 5, Discount: pct(50)},
	)

	p := producto(900, "100.00")
	p.LifecycleID = 5
	resolved := r.Resolve(p)

	assert.Equal(t, int64(1), resolved.PriceRuleID,
		"el ascenso termina en la categoría 3; la regla del ancestro no se mira")
	assertPrecio(t, "80", resolved)
}

// Categoría del producto desconocida o con padre colgante: el ascenso se
// trunca y el producto cae al precio de lista, sin error.
func TestResolve_CategoriaInconsistenteCaeAPrecioDeLista(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 1, CategoryID: 1, Discount: pct(10)})

	p := producto(1000, "30.00")
	p.CategoryID = 424242 // no existe en la taxonomía cargada
	resolved := r.Resolve(p)

	assert.Zero(t, resolved.PriceRuleID)
	assertPrecio(t, "30.00", resolved)
}

// Taxonomía cíclica: la resolución termina y nunca da más de
// MaxAncestorDepth saltos.
func TestResolve_TaxonomiaCiclicaTermina(t *testing.T) {
	tree := pricing.NewCategoryTree([]entity.Category{
		{ID: 1, ParentID: 2},
		{ID: 2, ParentID: 1},
	})
	idx := pricing.NewRuleIndex([]entity.PriceRule{
		{ID: 1, CategoryID: 9, Discount: pct(10)}, // nunca alcanzable
	})
	r := pricing.NewResolver(tree, idx)

	p := producto(1100, "10.00")
	p.CategoryID = 1
	resolved := r.Resolve(p)

	assertPrecio(t, "10.00", resolved)
}

// Descuentos mayores al 100% no producen precios negativos.
func TestResolve_PrecioNuncaNegativo(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 1, CategoryID: 3, Discount: pct(150)})

	resolved := r.Resolve(producto(1200, "80.00"))

	assert.True(t, resolved.Price.Equal(decimal.Zero),
		"descuento mayor al 100 por ciento se acota en cero, el precio siempre es no negativo")
}

// Regla sin descuento ni precio fijo: coincide pero deja el precio de lista.
func TestResolve_ReglaSinModificador(t *testing.T) {
	r := resolver(entity.PriceRule{ID: 1, CategoryID: 3})

	resolved := r.Resolve(producto(1300, "25.50"))

	assert.Equal(t, int64(1), resolved.PriceRuleID)
	assertPrecio(t, "25.50", resolved)
}

// La resolución no muta estado compartido: el mismo resolutor produce el
// mismo resultado para el mismo producto, llamado cuantas veces sea.
func TestResolve_Determinista(t *testing.T) {
	r := resolver(
		entity.PriceRule{ID: 1, CategoryID: 2, Discount: pct(15)},
		entity.PriceRule{ID: 2, ProductID: 55, DiscountPrice: flat("9.99")},
	)

	p1 := r.Resolve(producto(55, "20.00"))
	p2 := r.Resolve(producto(55, "20.00"))
	assert.Equal(t, p1, p2)

	q1 := r.Resolve(producto(56, "20.00"))
	q2 := r.Resolve(producto(56, "20.00"))
	assert.Equal(t, q1, q2)
	assertPrecio(t, "17", q1)
}
