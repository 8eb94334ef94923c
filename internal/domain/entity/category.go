package entity

// Category representa una categoría del catálogo (taxonomía jerárquica).
// ParentID == 0 indica que la categoría es raíz. La fuente de datos no
// garantiza que los enlaces padre formen un bosque acíclico; el motor de
// precios se defiende de ciclos y de padres colgantes.
type Category struct {
	ID       int64
	ParentID int64 // 0 si es raíz
	NameEN   string
	NameZH   string
}
