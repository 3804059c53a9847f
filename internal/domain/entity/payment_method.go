package entity

import "github.com/shopspring/decimal"

// PaymentMethod define un método de pago con sus comisiones.
// Los punteros distinguen "sin comisión" de "comisión cero".
// MesesPlazo != nil marca el método como financiamiento (cuotas); en ese caso
// CommissionPercent actúa como recargo al cliente y comisión del financiador.
type PaymentMethod struct {
	ID                   int64
	Name                 string
	Type                 string // efectivo, tarjeta, transferencia, financiamiento
	CommissionPercent    *decimal.Decimal
	FixedCommission      *decimal.Decimal
	POSCommissionPercent *decimal.Decimal
	FinancingTermMonths  *int
	Active               bool
}
