package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto más vendido del período.
type TopProductDTO struct {
	ProductID   int64           `json:"productoId"`
	ProductName string          `json:"producto"`
	UnitsSold   int64           `json:"unidades"`
	Revenue     decimal.Decimal `json:"ingresos"`
}

// ChannelSalesDTO ventas agregadas por canal.
type ChannelSalesDTO struct {
	ChannelID   int64           `json:"canalId"`
	ChannelName string          `json:"canal"`
	OrderCount  int64           `json:"pedidos"`
	GrossSales  decimal.Decimal `json:"ventas"`
	NetReceived decimal.Decimal `json:"netoRecibido"`
}

// DashboardSummaryDTO resumen financiero del día y del mes en curso.
type DashboardSummaryDTO struct {
	TodaySales        decimal.Decimal   `json:"ventasHoy"`
	TodayOrders       int64             `json:"pedidosHoy"`
	TodayNetReceived  decimal.Decimal   `json:"netoRecibidoHoy"`
	MonthlySales      decimal.Decimal   `json:"ventasMes"`
	MonthlyOrders     int64             `json:"pedidosMes"`
	MonthlyNet        decimal.Decimal   `json:"netoRecibidoMes"`
	MonthlyCommission decimal.Decimal   `json:"comisionesMes"`
	TopProducts       []TopProductDTO   `json:"topProductos"`
	SalesByChannel    []ChannelSalesDTO `json:"ventasPorCanal"`
}
