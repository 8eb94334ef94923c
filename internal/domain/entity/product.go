package entity

import "github.com/shopspring/decimal"

// Product es la vista del producto que consume el motor de precios
// (proyección de v_product: incluye nombres de categoría y ciclo de vida).
// LifecycleID == 0 indica que el producto no tiene ciclo de vida asignado.
type Product struct {
	ID          int64
	SKU         string
	NameEN      string
	CategoryID  int64
	CategoryEN  string
	LifecycleID int64 // 0 si no tiene ciclo de vida
	LifecycleEN string
	ListPriceUS decimal.Decimal // precio de lista (USD)
}
