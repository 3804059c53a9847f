package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es la cantidad disponible en unidades; se descuenta al confirmar una venta
// y se restaura al eliminarla.
type Product struct {
	ID        int64
	Name      string
	Barcode   string // número de código de barras, puede estar vacío
	Price     decimal.Decimal
	Stock     int64
	ImageURL  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
