package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumishop/kumi-api/internal/domain/entity"
)

type stubChannelRepo struct{ err error }

func (s stubChannelRepo) List() ([]*entity.Channel, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*entity.Channel{{ID: 1, Name: "Instagram"}, {ID: 2, Name: "WhatsApp"}}, nil
}
func (s stubChannelRepo) GetByID(id int64) (*entity.Channel, error) { return nil, nil }

type stubStatusRepo struct{}

func (stubStatusRepo) List() ([]*entity.OrderStatus, error) {
	return []*entity.OrderStatus{{ID: 1, Name: "Pendiente"}}, nil
}
func (stubStatusRepo) GetByID(id int64) (*entity.OrderStatus, error) { return nil, nil }

type stubMethodRepo struct{}

func (stubMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	return []*entity.PaymentMethod{{ID: 1, Name: "Efectivo", Type: "efectivo", Active: true}}, nil
}
func (stubMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) { return nil, nil }

type stubShippingRepo struct{}

func (stubShippingRepo) ListActive() ([]*entity.ShippingType, error) {
	return []*entity.ShippingType{{ID: 5, Name: "Local", Kind: "LOCAL", Active: true}}, nil
}
func (stubShippingRepo) GetByID(id int64) (*entity.ShippingType, error) { return nil, nil }

func TestLoadAll_CargaLosCuatroCatalogos(t *testing.T) {
	uc := NewReferenceUseCase(stubChannelRepo{}, stubStatusRepo{}, stubMethodRepo{}, stubShippingRepo{})

	resp, err := uc.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Channels, 2)
	assert.Len(t, resp.Statuses, 1)
	assert.Len(t, resp.PaymentMethods, 1)
	assert.Len(t, resp.ShippingTypes, 1)
	assert.Equal(t, "Efectivo", resp.PaymentMethods[0].Name)
}

func TestLoadAll_FallaCompletaSiUnCatalogoFalla(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := NewReferenceUseCase(stubChannelRepo{err: boom}, stubStatusRepo{}, stubMethodRepo{}, stubShippingRepo{})

	_, err := uc.LoadAll(context.Background())
	require.ErrorIs(t, err, boom)
}
