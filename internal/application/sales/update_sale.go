package sales

import (
	"context"
	"fmt"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// UpdateSale reemplaza una venta existente: restaura el stock de los detalles
// anteriores, borra líneas y pagos, y vuelve a aplicar la venta con los
// totales recalculados desde cero. Todo ocurre en una transacción.
func (uc *UseCase) UpdateSale(ctx context.Context, id int64, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	d, err := uc.buildDraft(req)
	if err != nil {
		return nil, err
	}

	existing, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	order := d.toOrder()
	order.ID = existing.ID
	order.Code = existing.Code
	order.CreatedAt = existing.CreatedAt

	var details []*entity.OrderDetail
	var payments []*entity.OrderPayment

	err = uc.tx.RunSale(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		oldDetails, err := orders.GetDetailsByOrderID(id)
		if err != nil {
			return fmt.Errorf("detalles anteriores del pedido %d: %w", id, err)
		}
		if err := restoreStock(products, oldDetails); err != nil {
			return err
		}
		if err := orders.DeleteDetails(id); err != nil {
			return fmt.Errorf("borrar detalles del pedido %d: %w", id, err)
		}
		if err := orders.DeletePayments(id); err != nil {
			return fmt.Errorf("borrar pagos del pedido %d: %w", id, err)
		}

		details = d.toDetails(id)
		if err := deductStock(products, details); err != nil {
			return err
		}
		for _, det := range details {
			if err := orders.CreateDetail(det); err != nil {
				return fmt.Errorf("crear detalle: %w", err)
			}
		}
		payments = d.toPayments(id)
		for _, pay := range payments {
			if err := orders.CreatePayment(pay); err != nil {
				return fmt.Errorf("crear pago: %w", err)
			}
		}
		return orders.Update(order)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("pedido_id", id).Msg("venta actualizada")

	resp := toSaleResponse(order, details, payments)
	return &resp, nil
}

// DeleteSale elimina la venta y devuelve sus unidades al inventario.
func (uc *UseCase) DeleteSale(ctx context.Context, id int64) error {
	if _, err := uc.orders.GetByID(id); err != nil {
		return err
	}

	err := uc.tx.RunSale(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		details, err := orders.GetDetailsByOrderID(id)
		if err != nil {
			return fmt.Errorf("detalles del pedido %d: %w", id, err)
		}
		if err := restoreStock(products, details); err != nil {
			return err
		}
		return orders.Delete(id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("pedido_id", id).Msg("venta eliminada, stock restaurado")
	return nil
}
