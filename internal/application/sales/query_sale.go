package sales

import (
	"fmt"
	"time"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// GetSale devuelve la venta con sus detalles y pagos.
func (uc *UseCase) GetSale(id int64) (*dto.SaleResponse, error) {
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
	resp := toSaleResponse(order, details, payments)
	return &resp, nil
}

// ListSales lista ventas con filtros de estado y rango de fechas.
// Las respuestas del listado no cargan detalles ni pagos.
func (uc *UseCase) ListSales(req dto.SaleListRequest) (*dto.SaleListResponse, error) {
	req.DefaultPage()

	filter := repository.OrderFilter{
		StatusID: req.StatusID,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.From != "" {
		from, err := time.Parse(dateLayout, req.From)
		if err != nil {
			return nil, fmt.Errorf("desde %q: %w", req.From, domain.ErrInvalidInput)
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(dateLayout, req.To)
		if err != nil {
			return nil, fmt.Errorf("hasta %q: %w", req.To, domain.ErrInvalidInput)
		}
		filter.To = &to
	}

	orders, err := uc.orders.List(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: req.Limit, Offset: req.Offset},
	}
	for _, o := range orders {
		resp.Items = append(resp.Items, toSaleResponse(o, nil, nil))
	}
	return resp, nil
}
