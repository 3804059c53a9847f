package sales

import (
	"context"
	"fmt"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// CreateSale valida la venta, recalcula todos los totales en el servidor y la
// persiste junto con el descuento de stock en una sola transacción.
func (uc *UseCase) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	d, err := uc.buildDraft(req)
	if err != nil {
		return nil, err
	}

	order := d.toOrder()
	var details []*entity.OrderDetail
	var payments []*entity.OrderPayment

	err = uc.tx.RunSale(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		if err := orders.Create(order); err != nil {
			return fmt.Errorf("crear pedido: %w", err)
		}
		details = d.toDetails(order.ID)
		if err := deductStock(products, details); err != nil {
			return err
		}
		for _, det := range details {
			if err := orders.CreateDetail(det); err != nil {
				return fmt.Errorf("crear detalle: %w", err)
			}
		}
		payments = d.toPayments(order.ID)
		for _, pay := range payments {
			if err := orders.CreatePayment(pay); err != nil {
				return fmt.Errorf("crear pago: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("pedido_id", order.ID).
		Int64("codigo", order.Code).
		Str("total", order.Total.StringFixed(2)).
		Str("neto", order.NetAmountReceived.StringFixed(2)).
		Msg("venta registrada")

	resp := toSaleResponse(order, details, payments)
	return &resp, nil
}
