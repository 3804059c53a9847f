package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumishop/kumi-api/internal/domain/sale"
)

func camisa() sale.CatalogProduct {
	return sale.CatalogProduct{ID: 10, Name: "Camisa", UnitPrice: dec("100"), AvailableStock: 5}
}

// Agregar dos veces el mismo producto fusiona cantidades en una sola línea.
func TestCart_AddFusionaCantidades(t *testing.T) {
	var c sale.Cart
	require.NoError(t, c.Add(camisa(), 2, decimal.Zero))
	require.NoError(t, c.Add(camisa(), 1, decimal.Zero))

	items := c.Items()
	require.Len(t, items, 1, "mismo producto => una sola línea")
	assert.Equal(t, int64(3), items[0].Quantity)
}

// La cantidad fusionada no puede exceder el stock disponible; el agregado se
// rechaza con un error que nombra el producto y el stock, sin recortar.
func TestCart_AddRechazaStockInsuficiente(t *testing.T) {
	var c sale.Cart
	require.NoError(t, c.Add(camisa(), 4, decimal.Zero))

	err := c.Add(camisa(), 2, decimal.Zero)
	require.Error(t, err)

	var stockErr *sale.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Camisa", stockErr.ProductName)
	assert.Equal(t, int64(5), stockErr.Available)
	assert.Equal(t, int64(6), stockErr.Requested)

	// El carrito queda intacto: la línea sigue con 4 unidades.
	require.Len(t, c.Items(), 1)
	assert.Equal(t, int64(4), c.Items()[0].Quantity)
}

func TestCart_AddCantidadInvalida(t *testing.T) {
	var c sale.Cart
	assert.Error(t, c.Add(camisa(), 0, decimal.Zero))
	assert.Error(t, c.Add(camisa(), -1, decimal.Zero))
	assert.True(t, c.IsEmpty())
}

func TestCart_RemoveYClear(t *testing.T) {
	var c sale.Cart
	otro := sale.CatalogProduct{ID: 11, Name: "Gorra", UnitPrice: dec("80"), AvailableStock: 3}
	require.NoError(t, c.Add(camisa(), 1, decimal.Zero))
	require.NoError(t, c.Add(otro, 1, decimal.Zero))

	c.Remove(camisa().ID)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, int64(11), c.Items()[0].ProductID)

	c.Clear()
	assert.True(t, c.IsEmpty())
}
