package repository

import (
	"time"

	"github.com/kumishop/kumi-api/internal/domain/entity"
)

// OrderFilter filtros para listar pedidos.
type OrderFilter struct {
	StatusID *int64
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// OrderRepository puerto de persistencia para pedidos, sus detalles y pagos.
// Create asigna ID y Code (consecutivo) al pedido.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateDetail(detail *entity.OrderDetail) error
	CreatePayment(payment *entity.OrderPayment) error
	GetByID(id int64) (*entity.Order, error)
	GetDetailsByOrderID(orderID int64) ([]*entity.OrderDetail, error)
	GetPaymentsByOrderID(orderID int64) ([]*entity.OrderPayment, error)
	Update(order *entity.Order) error
	List(filter OrderFilter) ([]*entity.Order, error)
	// Delete elimina el pedido con sus detalles y pagos (el caller restaura stock).
	Delete(id int64) error
	// DeleteDetails y DeletePayments limpian las líneas para reescribirlas en una edición.
	DeleteDetails(orderID int64) error
	DeletePayments(orderID int64) error
}
