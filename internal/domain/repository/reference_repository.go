package repository

import "github.com/kumishop/kumi-api/internal/domain/entity"

// ChannelRepository catálogo de canales de venta.
type ChannelRepository interface {
	List() ([]*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
}

// OrderStatusRepository catálogo de estados de pedido.
type OrderStatusRepository interface {
	List() ([]*entity.OrderStatus, error)
	GetByID(id int64) (*entity.OrderStatus, error)
}

// PaymentMethodRepository catálogo de métodos de pago con sus comisiones.
type PaymentMethodRepository interface {
	ListActive() ([]*entity.PaymentMethod, error)
	GetByID(id int64) (*entity.PaymentMethod, error)
}

// ShippingTypeRepository catálogo de tipos de envío.
type ShippingTypeRepository interface {
	ListActive() ([]*entity.ShippingType, error)
	GetByID(id int64) (*entity.ShippingType, error)
}
