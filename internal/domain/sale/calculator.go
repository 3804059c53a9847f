// Package sale implementa el motor de cálculo y conciliación de ventas:
// subtotales, descuentos, ISV, costo de envío, recargo de financiamiento,
// comisiones por método de pago y monto neto recibido.
//
// Todo el cálculo es una función pura sobre decimales: mismos insumos,
// mismos resultados, sin estado oculto. Se recalcula completo en cada edición.
package sale

import (
	"github.com/shopspring/decimal"

	"github.com/kumishop/kumi-api/internal/domain/entity"
)

// CashMethodID id convencional del método "Efectivo" en metodos_pago.
// Un pago único en efectivo puede exceder el total (genera vuelto).
const CashMethodID int64 = 1

// Tasa del ISV hondureño: 15% sobre el subtotal después de descuentos.
var TaxRate = decimal.New(15, -2)

// Epsilon tolerancia de conciliación de pagos: 0.01 Lempiras.
var Epsilon = decimal.New(1, -2)

// LineItem línea del carrito. Discount es un monto absoluto en Lempiras, no un porcentaje.
type LineItem struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
	Discount    decimal.Decimal
}

// Subtotal devuelve precio × cantidad − descuento.
// No se recorta en cero: un descuento mayor al valor de la línea produce un
// subtotal negativo (la línea actúa como rebaja del pedido).
func (it LineItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)).Sub(it.Discount)
}

// Allocation asigna un monto del total a un método de pago (pago dividido).
type Allocation struct {
	Method entity.PaymentMethod
	Amount decimal.Decimal
}

// IsFinancing indica si la asignación usa un método de financiamiento (cuotas).
func (a Allocation) IsFinancing() bool {
	return a.Method.FinancingTermMonths != nil
}

// ShippingConfig configuración de envío de la venta.
// ManualCost aplica cuando el tipo de envío es MANUAL (costo libre).
type ShippingConfig struct {
	Required   bool
	Type       *entity.ShippingType
	Quantity   *decimal.Decimal
	ManualCost *decimal.Decimal
}

// TaxPolicy política de impuestos de la venta.
type TaxPolicy struct {
	IgnoreTax bool // true => ISV 0 sin importar el subtotal
}

// Totals agrupa todas las cifras derivadas de una venta.
type Totals struct {
	Subtotal  decimal.Decimal // suma de subtotales de línea (con descuentos aplicados)
	Tax       decimal.Decimal // ISV 15%, o 0 si IgnoreTax
	BaseTotal decimal.Decimal // Subtotal + Tax

	HasFinancingSurcharge     bool
	FinancingSurchargePercent decimal.Decimal
	ClientPayableTotal        decimal.Decimal // BaseTotal con recargo de financiamiento

	ShippingCost        decimal.Decimal
	FinancingCommission decimal.Decimal // comisión cobrada por el financiador
	MethodCommission    decimal.Decimal // comisiones % + POS + fijas de métodos no financiados
	NetAmountReceived   decimal.Decimal // lo que realmente entra a caja

	TotalMethodsPaid    decimal.Decimal
	PaymentGap          decimal.Decimal // total a cobrar − total pagado
	IsSingleCashPayment bool
	Change              decimal.Decimal // vuelto; solo en pago único en efectivo
}

// TotalToCharge devuelve el monto contra el que se concilian los pagos:
// el total con recargo si hay financiamiento, el total base si no.
func (t Totals) TotalToCharge() decimal.Decimal {
	if t.HasFinancingSurcharge {
		return t.ClientPayableTotal
	}
	return t.BaseTotal
}

// Compute calcula todas las cifras de la venta a partir del carrito, la política
// de impuestos, la configuración de envío y las asignaciones de pago.
func Compute(items []LineItem, tax TaxPolicy, shipping ShippingConfig, allocations []Allocation) Totals {
	var t Totals

	for _, it := range items {
		t.Subtotal = t.Subtotal.Add(it.Subtotal())
	}

	if !tax.IgnoreTax {
		t.Tax = t.Subtotal.Mul(TaxRate)
	}
	t.BaseTotal = t.Subtotal.Add(t.Tax)

	// Recargo de financiamiento: porcentaje de la primera asignación financiada.
	for _, a := range allocations {
		if a.IsFinancing() {
			t.HasFinancingSurcharge = true
			if a.Method.CommissionPercent != nil {
				t.FinancingSurchargePercent = *a.Method.CommissionPercent
			}
			break
		}
	}
	t.ClientPayableTotal = t.BaseTotal
	if t.HasFinancingSurcharge {
		factor := decimal.NewFromInt(1).Add(t.FinancingSurchargePercent.Div(decimal.NewFromInt(100)))
		t.ClientPayableTotal = t.BaseTotal.Mul(factor)
	}

	t.ShippingCost = shippingCost(shipping)

	hundred := decimal.NewFromInt(100)
	for _, a := range allocations {
		if a.IsFinancing() {
			if a.Method.CommissionPercent != nil {
				t.FinancingCommission = t.FinancingCommission.Add(a.Amount.Mul(a.Method.CommissionPercent.Div(hundred)))
			}
			continue
		}
		if a.Method.CommissionPercent != nil {
			t.MethodCommission = t.MethodCommission.Add(a.Amount.Mul(a.Method.CommissionPercent.Div(hundred)))
		}
		if a.Method.POSCommissionPercent != nil {
			t.MethodCommission = t.MethodCommission.Add(a.Amount.Mul(a.Method.POSCommissionPercent.Div(hundred)))
		}
		if a.Method.FixedCommission != nil {
			t.MethodCommission = t.MethodCommission.Add(*a.Method.FixedCommission)
		}
	}

	t.NetAmountReceived = t.ClientPayableTotal.
		Sub(t.FinancingCommission).
		Sub(t.MethodCommission).
		Sub(t.ShippingCost)

	for _, a := range allocations {
		t.TotalMethodsPaid = t.TotalMethodsPaid.Add(a.Amount)
	}
	t.PaymentGap = t.TotalToCharge().Sub(t.TotalMethodsPaid)

	t.IsSingleCashPayment = len(allocations) == 1 && allocations[0].Method.ID == CashMethodID
	if t.IsSingleCashPayment {
		t.Change = t.TotalMethodsPaid.Sub(t.TotalToCharge())
	}

	return t
}

// shippingCost resuelve el costo de envío:
//   - 0 si no se requiere envío o no hay tipo seleccionado
//   - costo digitado si el tipo es MANUAL
//   - BaseCost si el costo es fijo (la cantidad se ignora)
//   - cantidad × BaseCost si es variable y hay cantidad
//   - 0 en cualquier otro caso
func shippingCost(s ShippingConfig) decimal.Decimal {
	if !s.Required || s.Type == nil {
		return decimal.Zero
	}
	if s.Type.Kind == entity.ShippingKindManual {
		if s.ManualCost != nil {
			return *s.ManualCost
		}
		return decimal.Zero
	}
	if s.Type.IsFixedCost {
		if s.Type.BaseCost != nil {
			return *s.Type.BaseCost
		}
		return decimal.Zero
	}
	if s.Quantity != nil && s.Type.BaseCost != nil {
		return s.Quantity.Mul(*s.Type.BaseCost)
	}
	return decimal.Zero
}
