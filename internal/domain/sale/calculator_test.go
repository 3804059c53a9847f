package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/sale"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

// cashMethod método id=1 (efectivo), sin comisiones.
func cashMethod() entity.PaymentMethod {
	return entity.PaymentMethod{ID: sale.CashMethodID, Name: "Efectivo", Type: "efectivo", Active: true}
}

// cartDosUnidades carrito de referencia: 2 × L100 sin descuento.
func cartDosUnidades() []sale.LineItem {
	return []sale.LineItem{
		{ProductID: 10, ProductName: "Camisa", UnitPrice: dec("100"), Quantity: 2, Discount: decimal.Zero},
	}
}

func assertDecEqual(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, dec(expected).Equal(got), "%s: esperado %s, obtenido %s", msg, expected, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal, ISV y total base
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: carrito [{precio:100, qty:2, descuento:0}], ISV activo
// → subtotal=200, isv=30, total=230.
func TestCompute_SubtotalISVTotalBase(t *testing.T) {
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, nil)

	assertDecEqual(t, "200", tot.Subtotal, "subtotal")
	assertDecEqual(t, "30", tot.Tax, "isv")
	assertDecEqual(t, "230", tot.BaseTotal, "total base")
}

// El subtotal es la suma de (precio×cantidad − descuento) por línea, sin recorte:
// un descuento mayor al valor de la línea la deja negativa (rebaja del pedido).
func TestCompute_DescuentoMayorQueLinea_NoSeRecorta(t *testing.T) {
	items := []sale.LineItem{
		{ProductID: 1, UnitPrice: dec("50"), Quantity: 1, Discount: dec("80")},
		{ProductID: 2, UnitPrice: dec("100"), Quantity: 1, Discount: decimal.Zero},
	}
	tot := sale.Compute(items, sale.TaxPolicy{IgnoreTax: true}, sale.ShippingConfig{}, nil)

	assertDecEqual(t, "70", tot.Subtotal, "subtotal con línea negativa (-30 + 100)")
}

// Con IgnoreTax el ISV es exactamente cero sin importar el signo ni la magnitud del subtotal.
func TestCompute_IgnorarISV(t *testing.T) {
	casos := []struct {
		nombre string
		items  []sale.LineItem
	}{
		{"subtotal positivo", cartDosUnidades()},
		{"subtotal negativo", []sale.LineItem{{ProductID: 1, UnitPrice: dec("10"), Quantity: 1, Discount: dec("500")}}},
		{"carrito vacío", nil},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tot := sale.Compute(c.items, sale.TaxPolicy{IgnoreTax: true}, sale.ShippingConfig{}, nil)
			assert.True(t, tot.Tax.IsZero(), "ISV debe ser 0 con IgnoreTax")
			assert.True(t, tot.BaseTotal.Equal(tot.Subtotal), "total base == subtotal sin ISV")
		})
	}
}

// El cálculo es una función pura: recomputar con los mismos insumos produce
// cifras idénticas.
func TestCompute_Idempotente(t *testing.T) {
	allocs := []sale.Allocation{{Method: cashMethod(), Amount: dec("230")}}
	a := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)
	b := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	assert.True(t, a.NetAmountReceived.Equal(b.NetAmountReceived))
	assert.True(t, a.ClientPayableTotal.Equal(b.ClientPayableTotal))
	assert.True(t, a.PaymentGap.Equal(b.PaymentGap))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pago único en efectivo y vuelto
// ──────────────────────────────────────────────────────────────────────────────

// Pago único en efectivo de L250 contra un total de L230:
// paymentGap=-20, vuelto=20 y la venta es válida.
func TestCompute_EfectivoUnicoConVuelto(t *testing.T) {
	allocs := []sale.Allocation{{Method: cashMethod(), Amount: dec("250")}}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	require.True(t, tot.IsSingleCashPayment)
	assertDecEqual(t, "-20", tot.PaymentGap, "diferencia de pago")
	assertDecEqual(t, "20", tot.Change, "vuelto")
}

// El vuelto es 0 siempre que haya más de una asignación, aunque la de
// efectivo pague de más.
func TestCompute_VueltoCeroConPagoDividido(t *testing.T) {
	tarjeta := entity.PaymentMethod{ID: 2, Name: "Tarjeta", Type: "tarjeta"}
	allocs := []sale.Allocation{
		{Method: cashMethod(), Amount: dec("300")},
		{Method: tarjeta, Amount: dec("50")},
	}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	assert.False(t, tot.IsSingleCashPayment)
	assert.True(t, tot.Change.IsZero(), "con pago dividido no hay vuelto")
}

// Un pago único con un método distinto de efectivo no genera vuelto.
func TestCompute_PagoUnicoNoEfectivoSinVuelto(t *testing.T) {
	tarjeta := entity.PaymentMethod{ID: 2, Name: "Tarjeta", Type: "tarjeta"}
	allocs := []sale.Allocation{{Method: tarjeta, Amount: dec("250")}}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	assert.False(t, tot.IsSingleCashPayment)
	assert.True(t, tot.Change.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo de envío
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_CostoEnvio(t *testing.T) {
	fijo := &entity.ShippingType{ID: 1, Name: "Local", Kind: "FIJO", BaseCost: decPtr("50"), IsFixedCost: true}
	variable := &entity.ShippingType{ID: 2, Name: "Por caja", Kind: "VARIABLE", BaseCost: decPtr("12.50")}
	manual := &entity.ShippingType{ID: 3, Name: "Negociado", Kind: entity.ShippingKindManual}

	casos := []struct {
		nombre   string
		shipping sale.ShippingConfig
		esperado string
	}{
		{"sin envío requerido", sale.ShippingConfig{}, "0"},
		{"requerido sin tipo", sale.ShippingConfig{Required: true}, "0"},
		// Costo fijo: la cantidad se ignora aunque esté presente.
		{"costo fijo ignora cantidad", sale.ShippingConfig{Required: true, Type: fijo, Quantity: decPtr("7")}, "50"},
		{"variable con cantidad", sale.ShippingConfig{Required: true, Type: variable, Quantity: decPtr("4")}, "50"},
		{"variable sin cantidad", sale.ShippingConfig{Required: true, Type: variable}, "0"},
		{"manual con costo digitado", sale.ShippingConfig{Required: true, Type: manual, ManualCost: decPtr("75")}, "75"},
		{"manual sin costo", sale.ShippingConfig{Required: true, Type: manual}, "0"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, c.shipping, nil)
			assertDecEqual(t, c.esperado, tot.ShippingCost, "costo de envío")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Financiamiento y comisiones
// ──────────────────────────────────────────────────────────────────────────────

// Método con meses_plazo=6 y comisión 10%: el total del cliente sube 10% y la
// comisión de financiamiento es monto × 10%.
func TestCompute_RecargoFinanciamiento(t *testing.T) {
	financiado := entity.PaymentMethod{
		ID: 5, Name: "Cuotas 6 meses", Type: "financiamiento",
		CommissionPercent:   decPtr("10"),
		FinancingTermMonths: intPtr(6),
	}
	allocs := []sale.Allocation{{Method: financiado, Amount: dec("253")}}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	require.True(t, tot.HasFinancingSurcharge)
	assertDecEqual(t, "253", tot.ClientPayableTotal, "total cliente = 230 × 1.10")
	assertDecEqual(t, "25.3", tot.FinancingCommission, "comisión financiamiento = 253 × 10%")
	assert.True(t, tot.MethodCommission.IsZero(), "la asignación financiada no suma comisión de método")
	// La conciliación usa el total con recargo.
	assert.True(t, tot.PaymentGap.IsZero())
}

// Comisiones de métodos no financiados: porcentaje + POS + fija, sumadas por asignación.
func TestCompute_ComisionesMetodosPago(t *testing.T) {
	tarjeta := entity.PaymentMethod{
		ID: 2, Name: "Tarjeta", Type: "tarjeta",
		CommissionPercent:    decPtr("3"),
		POSCommissionPercent: decPtr("1.5"),
		FixedCommission:      decPtr("5"),
	}
	allocs := []sale.Allocation{
		{Method: cashMethod(), Amount: dec("130")},
		{Method: tarjeta, Amount: dec("100")},
	}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, sale.ShippingConfig{}, allocs)

	// 100×3% + 100×1.5% + 5 = 9.5
	assertDecEqual(t, "9.5", tot.MethodCommission, "comisión de métodos")
	assert.True(t, tot.FinancingCommission.IsZero())
}

// Monto neto recibido = total cliente − comisiones − costo de envío.
func TestCompute_MontoNetoRecibido(t *testing.T) {
	fijo := &entity.ShippingType{ID: 1, Name: "Local", Kind: "FIJO", BaseCost: decPtr("50"), IsFixedCost: true}
	tarjeta := entity.PaymentMethod{ID: 2, Name: "Tarjeta", Type: "tarjeta", CommissionPercent: decPtr("3")}

	allocs := []sale.Allocation{{Method: tarjeta, Amount: dec("230")}}
	shipping := sale.ShippingConfig{Required: true, Type: fijo}
	tot := sale.Compute(cartDosUnidades(), sale.TaxPolicy{}, shipping, allocs)

	// 230 − (230×3%) − 50 = 173.1
	assertDecEqual(t, "173.1", tot.NetAmountReceived, "neto recibido")
}
