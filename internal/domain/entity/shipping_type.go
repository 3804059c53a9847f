package entity

import "github.com/shopspring/decimal"

// Tipos de envío según su forma de costo.
const (
	ShippingKindManual = "MANUAL" // costo libre digitado por el usuario
)

// ShippingType define un tipo de envío del catálogo.
// Con EsCostoFijo el costo es BaseCost sin importar la cantidad; si no,
// el costo es cantidad × BaseCost. Kind MANUAL exige costo digitado > 0.
type ShippingType struct {
	ID          int64
	Name        string
	Kind        string
	BaseCost    *decimal.Decimal
	IsFixedCost bool
	Active      bool
	Description string
}
