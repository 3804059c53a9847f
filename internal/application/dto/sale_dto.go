package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta. Si PrecioUnitario es nil se usa el precio
// del catálogo. Descuento es un monto absoluto en Lempiras.
type SaleItemRequest struct {
	ProductID int64            `json:"productoId" validate:"required"`
	Quantity  int64            `json:"cantidad" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"precioUnitario"`
	Discount  decimal.Decimal  `json:"descuento"`
}

// SalePaymentRequest asignación de un monto a un método de pago.
type SalePaymentRequest struct {
	MethodID int64           `json:"metodoPagoId" validate:"required"`
	Amount   decimal.Decimal `json:"monto"`
}

// CreateSaleRequest venta completa a confirmar. Los totales NO se aceptan del
// cliente: el motor de cálculo los recomputa siempre en el servidor.
type CreateSaleRequest struct {
	ChannelID       int64  `json:"canalId" validate:"required"`
	StatusID        int64  `json:"estadoId" validate:"required"`
	OrderDate       string `json:"fechaPedido" validate:"required,datetime=2006-01-02"`
	Notes           string `json:"notas"`
	CustomerName    string `json:"nombreCliente" validate:"required"`
	CustomerPhone   string `json:"telefonoCliente" validate:"required"`
	CustomerAddress string `json:"direccionCliente"`

	NeedsShipping      bool             `json:"necesitaEnvio"`
	ShippingTypeID     *int64           `json:"tipoEnvioId"`
	ShippingQuantity   *decimal.Decimal `json:"cantidadEnvio"`
	ManualShippingCost *decimal.Decimal `json:"costoEnvioManual"`

	IgnoreTax bool `json:"ignorarIsv"`

	Items    []SaleItemRequest    `json:"detalles" validate:"required,min=1,dive"`
	Payments []SalePaymentRequest `json:"metodosPago" validate:"required,min=1,dive"`
}

// UpdateSaleRequest reemplaza los campos editables de una venta existente.
// Misma forma que la creación; los totales se recomputan completos.
type UpdateSaleRequest = CreateSaleRequest

// SaleTotalsResponse cifras calculadas por el motor.
type SaleTotalsResponse struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	Tax                 decimal.Decimal `json:"isv"`
	Total               decimal.Decimal `json:"total"`
	ClientTotal         decimal.Decimal `json:"totalCliente"`
	ShippingCost        decimal.Decimal `json:"costoEnvio"`
	MethodCommission    decimal.Decimal `json:"comisionesMetodos"`
	FinancingCommission decimal.Decimal `json:"comisionesFinanciamiento"`
	NetAmountReceived   decimal.Decimal `json:"montoNetoRecibido"`
	Change              decimal.Decimal `json:"vuelto"`
}

// SaleDetailResponse línea de detalle en respuestas.
type SaleDetailResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productoId"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
	Discount  decimal.Decimal `json:"descuento"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SalePaymentResponse pago asignado en respuestas.
type SalePaymentResponse struct {
	ID       int64           `json:"id"`
	MethodID int64           `json:"metodoPagoId"`
	Amount   decimal.Decimal `json:"monto"`
}

// SaleResponse venta completa.
type SaleResponse struct {
	ID              int64                 `json:"id"`
	Code            int64                 `json:"codigoPedido"`
	ChannelID       int64                 `json:"canalId"`
	StatusID        int64                 `json:"estadoId"`
	OrderDate       string                `json:"fechaPedido"`
	Notes           string                `json:"notas,omitempty"`
	CustomerName    string                `json:"nombreCliente"`
	CustomerPhone   string                `json:"telefonoCliente"`
	CustomerAddress string                `json:"direccionCliente,omitempty"`
	NeedsShipping   bool                  `json:"necesitaEnvio"`
	ShippingTypeID  *int64                `json:"tipoEnvioId,omitempty"`
	IgnoreTax       bool                  `json:"ignorarIsv"`
	Totals          SaleTotalsResponse    `json:"totales"`
	Details         []SaleDetailResponse  `json:"detalles"`
	Payments        []SalePaymentResponse `json:"metodosPago"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// SaleListRequest filtros de listado de ventas.
type SaleListRequest struct {
	StatusID *int64 `query:"estadoId"`
	From     string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
	PageRequest
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
