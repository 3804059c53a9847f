package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics cifras agregadas de ventas en un período.
type SalesMetrics struct {
	OrderCount       int64
	GrossSales       decimal.Decimal // suma de totales (subtotal + ISV)
	NetReceived      decimal.Decimal // suma de monto_neto_recibido
	TotalCommissions decimal.Decimal // métodos + financiamiento
	ShippingCharged  decimal.Decimal
}

// TopProductResult producto más vendido del período.
type TopProductResult struct {
	ProductID   int64
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// ChannelSalesResult ventas agregadas por canal.
type ChannelSalesResult struct {
	ChannelID   int64
	ChannelName string
	OrderCount  int64
	GrossSales  decimal.Decimal
	NetReceived decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	GetSalesMetrics(ctx context.Context, from, to time.Time) (*SalesMetrics, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	GetSalesByChannel(ctx context.Context, from, to time.Time) ([]ChannelSalesResult, error)
}
