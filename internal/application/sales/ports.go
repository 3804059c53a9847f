package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos. Los
// repositorios entregados a fn operan sobre la misma transacción, de modo que
// descuento de stock y escritura del pedido se confirman o revierten juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error
}

// ReceiptLine línea del comprobante con el nombre del producto resuelto.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPayment pago del comprobante con el nombre del método resuelto.
type ReceiptPayment struct {
	MethodName string
	Amount     decimal.Decimal
}

// ReceiptData todo lo que necesita el render del comprobante de venta.
type ReceiptData struct {
	Order    *entity.Order
	Channel  string
	Status   string
	Lines    []ReceiptLine
	Payments []ReceiptPayment
}

// ReceiptGenerator genera el comprobante de una venta en PDF.
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}

// ReportOrder fila del reporte de ventas de un período.
type ReportOrder struct {
	Code              int64
	OrderDate         time.Time
	CustomerName      string
	Channel           string
	Status            string
	Total             decimal.Decimal
	NetAmountReceived decimal.Decimal
}

// ReportBuilder serializa el reporte de ventas (XML descargable).
type ReportBuilder interface {
	Build(from, to time.Time, orders []ReportOrder) ([]byte, error)
}
