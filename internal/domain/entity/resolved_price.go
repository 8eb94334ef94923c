package entity

import "github.com/shopspring/decimal"

// ResolvedPrice es el resultado del motor para un producto: el precio
// efectivo que paga la organización y la regla que lo determinó (si hubo).
// Es un valor transitorio de respuesta; nunca se persiste.
type ResolvedPrice struct {
	ProductID         int64
	ProductCategoryID int64
	ListPrice         decimal.Decimal
	PriceRuleID       int64 // 0 si ninguna regla aplicó
	PercentDiscount   decimal.NullDecimal
	DiscountPrice     decimal.NullDecimal
	Price             decimal.Decimal // precio efectivo, nunca negativo
}
