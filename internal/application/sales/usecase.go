// Package sales orquesta el ciclo de vida de una venta: validación,
// cálculo de totales, descuento de stock y persistencia transaccional.
package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
	"github.com/kumishop/kumi-api/internal/domain/sale"
	"github.com/kumishop/kumi-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// ValidationFailedError agrupa las fallas de validación de una venta para que
// el handler HTTP las devuelva campo a campo.
type ValidationFailedError struct {
	Errors []sale.ValidationError
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return "venta inválida: " + strings.Join(msgs, "; ")
}

// UseCase casos de uso de ventas.
type UseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	channels  repository.ChannelRepository
	statuses  repository.OrderStatusRepository
	methods   repository.PaymentMethodRepository
	shippings repository.ShippingTypeRepository
	tx        TxRunner
	receipts  ReceiptGenerator
	reports   ReportBuilder
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de ventas con todos sus puertos.
func NewUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	channels repository.ChannelRepository,
	statuses repository.OrderStatusRepository,
	methods repository.PaymentMethodRepository,
	shippings repository.ShippingTypeRepository,
	tx TxRunner,
	receipts ReceiptGenerator,
	reports ReportBuilder,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orders:    orders,
		products:  products,
		channels:  channels,
		statuses:  statuses,
		methods:   methods,
		shippings: shippings,
		tx:        tx,
		receipts:  receipts,
		reports:   reports,
		log:       log,
	}
}

// draft es una venta validada y calculada, lista para persistir.
type draft struct {
	submission sale.Submission
	totals     sale.Totals
	orderDate  time.Time
	shipping   sale.ShippingConfig
	req        dto.CreateSaleRequest
}

// buildDraft valida la solicitud contra el catálogo, arma el carrito y calcula
// los totales. Devuelve *ValidationFailedError si alguna regla de negocio
// falla y *sale.StockError si una línea excede el stock disponible.
func (uc *UseCase) buildDraft(req dto.CreateSaleRequest) (*draft, error) {
	orderDate, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("fechaPedido %q: %w", req.OrderDate, domain.ErrInvalidInput)
	}

	allocations := make([]sale.Allocation, 0, len(req.Payments))
	for _, p := range req.Payments {
		method, err := uc.methods.GetByID(p.MethodID)
		if err != nil {
			return nil, fmt.Errorf("método de pago %d: %w", p.MethodID, err)
		}
		allocations = append(allocations, sale.Allocation{Method: *method, Amount: p.Amount})
	}

	shipping := sale.ShippingConfig{
		Required:   req.NeedsShipping,
		Quantity:   req.ShippingQuantity,
		ManualCost: req.ManualShippingCost,
	}
	if req.NeedsShipping && req.ShippingTypeID != nil {
		st, err := uc.shippings.GetByID(*req.ShippingTypeID)
		if err != nil {
			return nil, fmt.Errorf("tipo de envío %d: %w", *req.ShippingTypeID, err)
		}
		shipping.Type = st
	}

	var cart sale.Cart
	for _, it := range req.Items {
		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("producto %d: %w", it.ProductID, err)
		}
		if !product.Active {
			return nil, fmt.Errorf("producto %q inactivo: %w", product.Name, domain.ErrInvalidInput)
		}
		price := product.Price
		if it.UnitPrice != nil {
			price = *it.UnitPrice
		}
		catalog := sale.CatalogProduct{
			ID:             product.ID,
			Name:           product.Name,
			UnitPrice:      price,
			AvailableStock: product.Stock,
		}
		if err := cart.Add(catalog, it.Quantity, it.Discount); err != nil {
			return nil, err
		}
	}

	submission := sale.Submission{
		Items:           cart.Items(),
		Tax:             sale.TaxPolicy{IgnoreTax: req.IgnoreTax},
		Shipping:        shipping,
		Allocations:     allocations,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ChannelID:       req.ChannelID,
		StatusID:        req.StatusID,
		OrderDate:       orderDate,
	}
	if verrs := sale.ValidateSubmission(submission); len(verrs) > 0 {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	return &draft{
		submission: submission,
		totals:     sale.Compute(submission.Items, submission.Tax, submission.Shipping, submission.Allocations),
		orderDate:  orderDate,
		shipping:   shipping,
		req:        req,
	}, nil
}

// toOrder materializa el borrador como cabecera de pedido persistible.
func (d *draft) toOrder() *entity.Order {
	t := d.totals
	return &entity.Order{
		ChannelID:        d.req.ChannelID,
		StatusID:         d.req.StatusID,
		OrderDate:        d.orderDate,
		CustomerName:     d.req.CustomerName,
		CustomerPhone:    d.req.CustomerPhone,
		CustomerAddress:  d.req.CustomerAddress,
		Notes:            d.req.Notes,
		NeedsShipping:    d.req.NeedsShipping,
		ShippingTypeID:   d.req.ShippingTypeID,
		ShippingQuantity: d.req.ShippingQuantity,
		ShippingCost:     t.ShippingCost,
		IgnoreTax:        d.req.IgnoreTax,

		Subtotal:            t.Subtotal,
		Tax:                 t.Tax,
		Total:               t.BaseTotal,
		ClientTotal:         t.ClientPayableTotal,
		MethodCommission:    t.MethodCommission,
		FinancingCommission: t.FinancingCommission,
		NetAmountReceived:   t.NetAmountReceived,
		Change:              t.Change,
	}
}

func (d *draft) toDetails(orderID int64) []*entity.OrderDetail {
	details := make([]*entity.OrderDetail, 0, len(d.submission.Items))
	for _, it := range d.submission.Items {
		details = append(details, &entity.OrderDetail{
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Subtotal:  it.Subtotal(),
		})
	}
	return details
}

func (d *draft) toPayments(orderID int64) []*entity.OrderPayment {
	payments := make([]*entity.OrderPayment, 0, len(d.submission.Allocations))
	for _, a := range d.submission.Allocations {
		payments = append(payments, &entity.OrderPayment{
			OrderID:         orderID,
			PaymentMethodID: a.Method.ID,
			Amount:          a.Amount,
		})
	}
	return payments
}

func toSaleResponse(order *entity.Order, details []*entity.OrderDetail, payments []*entity.OrderPayment) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:              order.ID,
		Code:            order.Code,
		ChannelID:       order.ChannelID,
		StatusID:        order.StatusID,
		OrderDate:       order.OrderDate.Format(dateLayout),
		Notes:           order.Notes,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		NeedsShipping:   order.NeedsShipping,
		ShippingTypeID:  order.ShippingTypeID,
		IgnoreTax:       order.IgnoreTax,
		Totals: dto.SaleTotalsResponse{
			Subtotal:            order.Subtotal,
			Tax:                 order.Tax,
			Total:               order.Total,
			ClientTotal:         order.ClientTotal,
			ShippingCost:        order.ShippingCost,
			MethodCommission:    order.MethodCommission,
			FinancingCommission: order.FinancingCommission,
			NetAmountReceived:   order.NetAmountReceived,
			Change:              order.Change,
		},
		Details:   make([]dto.SaleDetailResponse, 0, len(details)),
		Payments:  make([]dto.SalePaymentResponse, 0, len(payments)),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Discount:  d.Discount,
			Subtotal:  d.Subtotal,
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.SalePaymentResponse{
			ID:       p.ID,
			MethodID: p.PaymentMethodID,
			Amount:   p.Amount,
		})
	}
	return resp
}

// restoreStock devuelve al inventario las unidades de los detalles dados.
// Debe ejecutarse dentro de la transacción que borra o reescribe los detalles.
func restoreStock(products repository.ProductRepository, details []*entity.OrderDetail) error {
	for _, d := range details {
		p, err := products.GetForUpdate(d.ProductID)
		if err != nil {
			return fmt.Errorf("restaurar stock del producto %d: %w", d.ProductID, err)
		}
		if err := products.UpdateStock(p.ID, p.Stock+d.Quantity); err != nil {
			return fmt.Errorf("restaurar stock del producto %d: %w", d.ProductID, err)
		}
	}
	return nil
}

// deductStock descuenta del inventario las unidades de los detalles dados,
// verificando el stock bajo bloqueo de fila. El chequeo del carrito se hizo
// sobre una lectura sin bloqueo; este es el definitivo.
func deductStock(products repository.ProductRepository, details []*entity.OrderDetail) error {
	for _, d := range details {
		p, err := products.GetForUpdate(d.ProductID)
		if err != nil {
			return fmt.Errorf("descontar stock del producto %d: %w", d.ProductID, err)
		}
		if p.Stock < d.Quantity {
			return &sale.StockError{ProductName: p.Name, Available: p.Stock, Requested: d.Quantity}
		}
		if err := products.UpdateStock(p.ID, p.Stock-d.Quantity); err != nil {
			return fmt.Errorf("descontar stock del producto %d: %w", d.ProductID, err)
		}
	}
	return nil
}
