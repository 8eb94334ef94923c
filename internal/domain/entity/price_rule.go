package entity

import "github.com/shopspring/decimal"

// PriceRule es una regla de precio de una organización compradora.
// El alcance es exactamente uno de: ProductID (regla por producto) o
// CategoryID con LifecycleID opcional (regla por categoría). Valor 0
// significa "sin restricción" en los tres campos de alcance.
//
// Los datos de origen pueden traer Discount (porcentaje) y DiscountPrice
// a la vez; DiscountPrice siempre tiene prioridad. Usar Modifier() para
// obtener el modificador efectivo en lugar de inspeccionar los campos.
type PriceRule struct {
	ID            int64
	OrgID         int64
	ProductID     int64 // 0 si la regla es por categoría
	CategoryID    int64 // 0 si la regla es por producto
	LifecycleID   int64 // 0 si no restringe ciclo de vida
	Discount      decimal.NullDecimal // porcentaje de descuento
	DiscountPrice decimal.NullDecimal // precio fijo que reemplaza al de lista
}

// ModifierKind discrimina el tipo de modificador de precio.
type ModifierKind int

const (
	// ModifierNone la regla no altera el precio de lista.
	ModifierNone ModifierKind = iota
	// ModifierFlatOverride la regla fija un precio absoluto.
	ModifierFlatOverride
	// ModifierPercentOff la regla descuenta un porcentaje del precio de lista.
	ModifierPercentOff
)

// PriceModifier modificador efectivo de una regla, ya con la precedencia
// resuelta: el cálculo no vuelve a mirar los campos opcionales.
type PriceModifier struct {
	Kind   ModifierKind
	Amount decimal.Decimal // precio fijo o porcentaje según Kind
}

// Modifier devuelve el modificador efectivo de la regla.
// DiscountPrice tiene prioridad sobre Discount cuando ambos están presentes.
func (r PriceRule) Modifier() PriceModifier {
	if r.DiscountPrice.Valid {
		return PriceModifier{Kind: ModifierFlatOverride, Amount: r.DiscountPrice.Decimal}
	}
	if r.Discount.Valid {
		return PriceModifier{Kind: ModifierPercentOff, Amount: r.Discount.Decimal}
	}
	return PriceModifier{Kind: ModifierNone}
}

// IsProductScoped indica si la regla aplica a un producto exacto.
func (r PriceRule) IsProductScoped() bool { return r.ProductID != 0 }
