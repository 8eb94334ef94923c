package pricing

import "github.com/jhoicas/Precios-api/internal/domain/entity"

// MaxAncestorDepth tope de niveles que recorre cualquier caminata por la
// cadena de ancestros. Los enlaces padre vienen de datos que pueden estar
// mal configurados (ciclos, padres colgantes); el tope garantiza terminación.
const MaxAncestorDepth = 10

// CategoryTree responde consultas de cadena de ancestros sobre la tabla de
// categorías cargada una vez por lote. Inmutable después de construido;
// seguro para lecturas concurrentes.
type CategoryTree struct {
	parents map[int64]int64 // id -> parent_id (0 = raíz)
}

// NewCategoryTree construye el árbol desde las categorías cargadas.
func NewCategoryTree(categories []entity.Category) *CategoryTree {
	parents := make(map[int64]int64, len(categories))
	for _, c := range categories {
		parents[c.ID] = c.ParentID
	}
	return &CategoryTree{parents: parents}
}

// AncestorChain devuelve la cadena de ancestros empezando en categoryID y
// subiendo hacia la raíz. La caminata es iterativa con contador de
// profundidad y conjunto de visitados; se detiene en silencio cuando:
//   - la categoría actual no tiene padre (raíz alcanzada),
//   - el padre no existe en la tabla cargada (dato inconsistente),
//   - se alcanza MaxAncestorDepth o se repite una categoría (ciclo).
func (t *CategoryTree) AncestorChain(categoryID int64) []int64 {
	chain := make([]int64, 0, 4)
	visited := make(map[int64]bool, MaxAncestorDepth)

	current := categoryID
	for depth := 0; depth < MaxAncestorDepth; depth++ {
		if visited[current] {
			break
		}
		visited[current] = true
		chain = append(chain, current)

		parent, ok := t.parents[current]
		if !ok || parent == 0 {
			break
		}
		current = parent
	}
	return chain
}

// Path devuelve la ruta raíz→hoja de una categoría (cadena de ancestros
// invertida). Se usa para decorar listados planos de categorías; misma
// caminata, mismas guardas.
func (t *CategoryTree) Path(categoryID int64) []int64 {
	chain := t.AncestorChain(categoryID)
	path := make([]int64, len(chain))
	for i, id := range chain {
		path[len(chain)-1-i] = id
	}
	return path
}

// Parent devuelve el padre de una categoría y si existe en la tabla cargada.
func (t *CategoryTree) Parent(categoryID int64) (int64, bool) {
	p, ok := t.parents[categoryID]
	if !ok || p == 0 {
		return 0, false
	}
	return p, true
}
