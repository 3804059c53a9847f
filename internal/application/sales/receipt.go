package sales

import (
	"fmt"

	"github.com/kumishop/kumi-api/internal/domain"
)

// Receipt genera el comprobante PDF de la venta indicada.
func (uc *UseCase) Receipt(id int64) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("generación de comprobantes no configurada: %w", domain.ErrConflict)
	}

	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	details, err := uc.orders.GetDetailsByOrderID(id)
	if err != nil {
		return nil, fmt.Errorf("detalles del pedido %d: %w", id, err)
	}
	payments, err := uc.orders.GetPaymentsByOrderID(id)
	if err != nil {
		return nil, fmt.Errorf("pagos del pedido %d: %w", id, err)
	}

	data := ReceiptData{Order: order}

	if ch, err := uc.channels.GetByID(order.ChannelID); err == nil {
		data.Channel = ch.Name
	}
	if st, err := uc.statuses.GetByID(order.StatusID); err == nil {
		data.Status = st.Name
	}

	for _, d := range details {
		line := ReceiptLine{
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Discount:  d.Discount,
			Subtotal:  d.Subtotal,
		}
		if p, err := uc.products.GetByID(d.ProductID); err == nil {
			line.ProductName = p.Name
		} else {
			line.ProductName = fmt.Sprintf("producto #%d", d.ProductID)
		}
		data.Lines = append(data.Lines, line)
	}

	for _, p := range payments {
		pay := ReceiptPayment{Amount: p.Amount}
		if m, err := uc.methods.GetByID(p.PaymentMethodID); err == nil {
			pay.MethodName = m.Name
		} else {
			pay.MethodName = fmt.Sprintf("método #%d", p.PaymentMethodID)
		}
		data.Payments = append(data.Payments, pay)
	}

	pdf, err := uc.receipts.Generate(data)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante del pedido %d: %w", id, err)
	}
	return pdf, nil
}
