package sale

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CatalogProduct es la vista mínima del catálogo que necesita el carrito:
// id, nombre, precio y stock disponible al momento de la selección.
type CatalogProduct struct {
	ID             int64
	Name           string
	UnitPrice      decimal.Decimal
	AvailableStock int64
}

// StockError rechaza un agregado al carrito por stock insuficiente.
// Nombra el producto y el stock disponible; nunca se recorta en silencio.
type StockError struct {
	ProductName string
	Available   int64
	Requested   int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %q: disponibles %d, solicitados %d",
		e.ProductName, e.Available, e.Requested)
}

// Cart carrito en memoria de una sesión de venta.
// Volver a agregar un producto ya presente fusiona cantidades; la cantidad
// fusionada nunca puede exceder el stock disponible al momento de la selección.
type Cart struct {
	items []LineItem
}

// Add agrega qty unidades del producto con un descuento absoluto opcional.
// Si el producto ya está en el carrito se fusionan las cantidades y el
// descuento se reemplaza. Retorna *StockError si la cantidad resultante
// excede el stock disponible.
func (c *Cart) Add(p CatalogProduct, qty int64, discount decimal.Decimal) error {
	if qty <= 0 {
		return fmt.Errorf("cantidad inválida: %d", qty)
	}
	merged := qty
	idx := -1
	for i, it := range c.items {
		if it.ProductID == p.ID {
			merged += it.Quantity
			idx = i
			break
		}
	}
	if merged > p.AvailableStock {
		return &StockError{ProductName: p.Name, Available: p.AvailableStock, Requested: merged}
	}
	if idx >= 0 {
		c.items[idx].Quantity = merged
		c.items[idx].Discount = discount
		return nil
	}
	c.items = append(c.items, LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.UnitPrice,
		Quantity:    qty,
		Discount:    discount,
	})
	return nil
}

// Remove quita el producto del carrito si está presente.
func (c *Cart) Remove(productID int64) {
	for i, it := range c.items {
		if it.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear vacía el carrito (reset del formulario de venta).
func (c *Cart) Clear() {
	c.items = nil
}

// Items devuelve las líneas actuales del carrito.
func (c *Cart) Items() []LineItem {
	return c.items
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
