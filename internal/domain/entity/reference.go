package entity

// Channel canal de venta (Instagram, WhatsApp, tienda física, etc.).
type Channel struct {
	ID      int64
	Name    string
	IconURL string
}

// OrderStatus estado de un pedido (pendiente, entregado, cancelado, ...).
type OrderStatus struct {
	ID   int64
	Name string
}
