package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// ReferenceUseCase carga los catálogos de referencia del formulario de venta.
type ReferenceUseCase struct {
	channels  repository.ChannelRepository
	statuses  repository.OrderStatusRepository
	methods   repository.PaymentMethodRepository
	shippings repository.ShippingTypeRepository
}

// NewReferenceUseCase construye el caso de uso de datos de referencia.
func NewReferenceUseCase(
	channels repository.ChannelRepository,
	statuses repository.OrderStatusRepository,
	methods repository.PaymentMethodRepository,
	shippings repository.ShippingTypeRepository,
) *ReferenceUseCase {
	return &ReferenceUseCase{channels: channels, statuses: statuses, methods: methods, shippings: shippings}
}

// LoadAll trae los cuatro catálogos en paralelo. Si cualquiera falla, la carga
// completa falla; el formulario no puede operar con catálogos parciales.
func (uc *ReferenceUseCase) LoadAll(ctx context.Context) (*dto.ReferenceDataResponse, error) {
	var resp dto.ReferenceDataResponse
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		channels, err := uc.channels.List()
		if err != nil {
			return err
		}
		resp.Channels = make([]dto.ChannelResponse, 0, len(channels))
		for _, c := range channels {
			resp.Channels = append(resp.Channels, dto.ChannelResponse{ID: c.ID, Name: c.Name, IconURL: c.IconURL})
		}
		return nil
	})

	g.Go(func() error {
		statuses, err := uc.statuses.List()
		if err != nil {
			return err
		}
		resp.Statuses = make([]dto.OrderStatusResponse, 0, len(statuses))
		for _, s := range statuses {
			resp.Statuses = append(resp.Statuses, dto.OrderStatusResponse{ID: s.ID, Name: s.Name})
		}
		return nil
	})

	g.Go(func() error {
		methods, err := uc.methods.ListActive()
		if err != nil {
			return err
		}
		resp.PaymentMethods = make([]dto.PaymentMethodResponse, 0, len(methods))
		for _, m := range methods {
			resp.PaymentMethods = append(resp.PaymentMethods, dto.PaymentMethodResponse{
				ID:                   m.ID,
				Name:                 m.Name,
				Type:                 m.Type,
				CommissionPercent:    m.CommissionPercent,
				FixedCommission:      m.FixedCommission,
				POSCommissionPercent: m.POSCommissionPercent,
				FinancingTermMonths:  m.FinancingTermMonths,
			})
		}
		return nil
	})

	g.Go(func() error {
		shippings, err := uc.shippings.ListActive()
		if err != nil {
			return err
		}
		resp.ShippingTypes = make([]dto.ShippingTypeResponse, 0, len(shippings))
		for _, s := range shippings {
			resp.ShippingTypes = append(resp.ShippingTypes, dto.ShippingTypeResponse{
				ID:          s.ID,
				Name:        s.Name,
				Kind:        s.Kind,
				BaseCost:    s.BaseCost,
				IsFixedCost: s.IsFixedCost,
				Description: s.Description,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
