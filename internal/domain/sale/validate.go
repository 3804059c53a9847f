package sale

import (
	"fmt"
	"time"

	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/pkg/moneyfmt"
)

// ValidationError falla de validación de una venta: campo + motivo.
// Cada regla produce su propio mensaje; nada se corrige en silencio.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Submission es una venta lista para validar y confirmar.
type Submission struct {
	Items       []LineItem
	Tax         TaxPolicy
	Shipping    ShippingConfig
	Allocations []Allocation

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ChannelID       int64
	StatusID        int64
	OrderDate       time.Time
}

// ValidateSubmission aplica todas las reglas previas a confirmar una venta y
// devuelve una falla por cada regla incumplida. Una venta solo se envía al
// backend cuando la lista está vacía.
func ValidateSubmission(s Submission) []ValidationError {
	var errs []ValidationError

	if len(s.Items) == 0 {
		errs = append(errs, ValidationError{Field: "detalles", Message: "debes agregar al menos un producto"})
	}
	if s.CustomerName == "" {
		errs = append(errs, ValidationError{Field: "nombreCliente", Message: "el nombre del cliente es requerido"})
	}
	if s.CustomerPhone == "" {
		errs = append(errs, ValidationError{Field: "telefonoCliente", Message: "el teléfono del cliente es requerido"})
	}
	if s.ChannelID == 0 {
		errs = append(errs, ValidationError{Field: "canalVenta", Message: "el canal de venta es requerido"})
	}
	if s.StatusID == 0 {
		errs = append(errs, ValidationError{Field: "estadoPedido", Message: "el estado del pedido es requerido"})
	}
	if s.OrderDate.IsZero() {
		errs = append(errs, ValidationError{Field: "fechaPedido", Message: "la fecha del pedido es requerida"})
	}
	if s.Shipping.Required && s.CustomerAddress == "" {
		errs = append(errs, ValidationError{Field: "direccionCliente", Message: "la dirección es requerida para envíos"})
	}

	if len(s.Allocations) == 0 {
		errs = append(errs, ValidationError{Field: "metodosPago", Message: "debes agregar al menos un método de pago"})
	}
	for _, a := range s.Allocations {
		if !a.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Field:   "metodosPago",
				Message: fmt.Sprintf("el método %q debe tener un monto mayor que cero", a.Method.Name),
			})
		}
	}

	if s.Shipping.Required && s.Shipping.Type != nil && s.Shipping.Type.Kind == entity.ShippingKindManual {
		if s.Shipping.ManualCost == nil || !s.Shipping.ManualCost.IsPositive() {
			errs = append(errs, ValidationError{Field: "costoEnvio", Message: "el envío manual requiere un costo mayor que cero"})
		}
	}

	// Conciliación de pagos: con un único pago en efectivo se permite pagar de
	// más (vuelto) pero nunca de menos; con pagos divididos la suma debe ser
	// exacta dentro del epsilon.
	if len(s.Allocations) > 0 {
		t := Compute(s.Items, s.Tax, s.Shipping, s.Allocations)
		if t.IsSingleCashPayment {
			if t.PaymentGap.GreaterThan(Epsilon) {
				errs = append(errs, ValidationError{
					Field: "metodosPago",
					Message: fmt.Sprintf("monto insuficiente: lo pagado (%s) debe ser mayor o igual al total de la venta (%s)",
						moneyfmt.Lempiras(t.TotalMethodsPaid), moneyfmt.Lempiras(t.TotalToCharge())),
				})
			}
		} else if t.PaymentGap.Abs().GreaterThan(Epsilon) {
			errs = append(errs, ValidationError{
				Field: "metodosPago",
				Message: fmt.Sprintf("suma incorrecta: la suma de los métodos de pago (%s) debe ser igual al total de la venta (%s)",
					moneyfmt.Lempiras(t.TotalMethodsPaid), moneyfmt.Lempiras(t.TotalToCharge())),
			})
		}
	}

	return errs
}
