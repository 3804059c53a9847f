package dto

import "github.com/shopspring/decimal"

// ChannelResponse canal de venta.
type ChannelResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	IconURL string `json:"urlIcono,omitempty"`
}

// OrderStatusResponse estado de pedido.
type OrderStatusResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// PaymentMethodResponse método de pago con comisiones.
type PaymentMethodResponse struct {
	ID                   int64            `json:"id"`
	Name                 string           `json:"nombre"`
	Type                 string           `json:"tipo"`
	CommissionPercent    *decimal.Decimal `json:"comisionPorcentaje,omitempty"`
	FixedCommission      *decimal.Decimal `json:"comisionFija,omitempty"`
	POSCommissionPercent *decimal.Decimal `json:"comisionPosPorcentaje,omitempty"`
	FinancingTermMonths  *int             `json:"mesesPlazo,omitempty"`
}

// ShippingTypeResponse tipo de envío.
type ShippingTypeResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"nombre"`
	Kind        string           `json:"tipo"`
	BaseCost    *decimal.Decimal `json:"costoBase,omitempty"`
	IsFixedCost bool             `json:"esCostoFijo"`
	Description string           `json:"descripcion,omitempty"`
}

// ReferenceDataResponse las cuatro listas de referencia que necesita el
// formulario de venta, cargadas en una sola llamada.
type ReferenceDataResponse struct {
	Channels       []ChannelResponse       `json:"canales"`
	Statuses       []OrderStatusResponse   `json:"estadosPedido"`
	PaymentMethods []PaymentMethodResponse `json:"metodosPago"`
	ShippingTypes  []ShippingTypeResponse  `json:"tiposEnvio"`
}
