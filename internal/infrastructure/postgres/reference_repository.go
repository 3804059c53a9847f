package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

var (
	_ repository.ChannelRepository       = (*ChannelRepo)(nil)
	_ repository.OrderStatusRepository   = (*OrderStatusRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
	_ repository.ShippingTypeRepository  = (*ShippingTypeRepo)(nil)
)

// ChannelRepo catálogo de canales de venta sobre PostgreSQL.
type ChannelRepo struct {
	q Querier
}

// NewChannelRepository construye el adaptador de canales.
func NewChannelRepository(q Querier) *ChannelRepo {
	return &ChannelRepo{q: q}
}

func (r *ChannelRepo) List() ([]*entity.Channel, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, COALESCE(url_icono, '') FROM canales ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list canales: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		var c entity.Channel
		if err := rows.Scan(&c.ID, &c.Name, &c.IconURL); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		channels = append(channels, &c)
	}
	return channels, rows.Err()
}

func (r *ChannelRepo) GetByID(id int64) (*entity.Channel, error) {
	var c entity.Channel
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, COALESCE(url_icono, '') FROM canales WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.IconURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get canal: %w", err)
	}
	return &c, nil
}

// OrderStatusRepo catálogo de estados de pedido sobre PostgreSQL.
type OrderStatusRepo struct {
	q Querier
}

// NewOrderStatusRepository construye el adaptador de estados de pedido.
func NewOrderStatusRepository(q Querier) *OrderStatusRepo {
	return &OrderStatusRepo{q: q}
}

func (r *OrderStatusRepo) List() ([]*entity.OrderStatus, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nombre FROM estados_pedido ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list estados: %w", err)
	}
	defer rows.Close()

	var statuses []*entity.OrderStatus
	for rows.Next() {
		var s entity.OrderStatus
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		statuses = append(statuses, &s)
	}
	return statuses, rows.Err()
}

func (r *OrderStatusRepo) GetByID(id int64) (*entity.OrderStatus, error) {
	var s entity.OrderStatus
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre FROM estados_pedido WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get estado: %w", err)
	}
	return &s, nil
}

const paymentMethodColumns = `id, nombre, tipo, comision_porcentaje, comision_fija,
	comision_pos_porcentaje, meses_plazo, activo`

// PaymentMethodRepo catálogo de métodos de pago sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador de métodos de pago.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+paymentMethodColumns+` FROM metodos_pago WHERE activo = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list metodos de pago: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *PaymentMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	m, err := scanPaymentMethod(r.q.QueryRow(context.Background(),
		`SELECT `+paymentMethodColumns+` FROM metodos_pago WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func scanPaymentMethod(row pgx.Row) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := row.Scan(&m.ID, &m.Name, &m.Type, &m.CommissionPercent, &m.FixedCommission,
		&m.POSCommissionPercent, &m.FinancingTermMonths, &m.Active)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const shippingTypeColumns = `id, nombre, tipo, costo_base, es_costo_fijo, activo, COALESCE(descripcion, '')`

// ShippingTypeRepo catálogo de tipos de envío sobre PostgreSQL.
type ShippingTypeRepo struct {
	q Querier
}

// NewShippingTypeRepository construye el adaptador de tipos de envío.
func NewShippingTypeRepository(q Querier) *ShippingTypeRepo {
	return &ShippingTypeRepo{q: q}
}

func (r *ShippingTypeRepo) ListActive() ([]*entity.ShippingType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+shippingTypeColumns+` FROM tipos_envio WHERE activo = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tipos de envio: %w", err)
	}
	defer rows.Close()

	var types []*entity.ShippingType
	for rows.Next() {
		t, err := scanShippingType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *ShippingTypeRepo) GetByID(id int64) (*entity.ShippingType, error) {
	t, err := scanShippingType(r.q.QueryRow(context.Background(),
		`SELECT `+shippingTypeColumns+` FROM tipos_envio WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func scanShippingType(row pgx.Row) (*entity.ShippingType, error) {
	var t entity.ShippingType
	err := row.Scan(&t.ID, &t.Name, &t.Kind, &t.BaseCost, &t.IsFixedCost, &t.Active, &t.Description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
