package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa la cabecera de un pedido/venta con todos los montos
// calculados por el motor de ventas al momento de confirmar.
// Los datos del cliente van embebidos (la tienda no mantiene un padrón de clientes).
type Order struct {
	ID              int64
	Code            int64 // codigo_pedido, consecutivo visible al usuario
	ChannelID       int64
	StatusID        int64
	OrderDate       time.Time
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string // requerido solo si NeedsShipping
	Notes           string

	NeedsShipping    bool
	ShippingTypeID   *int64
	ShippingQuantity *decimal.Decimal
	ShippingCost     decimal.Decimal

	IgnoreTax bool

	// Montos persistidos del motor de cálculo.
	Subtotal            decimal.Decimal // después de descuentos
	Tax                 decimal.Decimal // ISV 15%
	Total               decimal.Decimal // subtotal + ISV
	ClientTotal         decimal.Decimal // total con recargo de financiamiento si aplica
	MethodCommission    decimal.Decimal
	FinancingCommission decimal.Decimal
	NetAmountReceived   decimal.Decimal
	Change              decimal.Decimal // vuelto en pago único en efectivo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDetail línea de detalle de un pedido.
// Subtotal = cantidad × precio_unitario − descuento (el descuento es monto absoluto).
type OrderDetail struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderPayment asignación de un monto del pedido a un método de pago (pago dividido).
type OrderPayment struct {
	ID              int64
	OrderID         int64
	PaymentMethodID int64
	Amount          decimal.Decimal
}
