package entity

// BuyerProduct datos extendidos de un producto específicos de una
// organización compradora (SKU propio del comprador, notas comerciales).
type BuyerProduct struct {
	ID        int64
	OrgID     int64
	ProductID int64
	SKU       string // SKU con el que el comprador identifica el producto
	Notes     string
}
