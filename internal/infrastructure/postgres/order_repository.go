package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/entity"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, codigo_pedido, canal_id, estado_id, fecha_pedido,
	nombre_cliente, telefono_cliente, direccion_cliente, notas,
	necesita_envio, tipo_envio_id, cantidad_envio, costo_envio, ignorar_isv,
	subtotal, isv, total, total_cliente, total_comisiones_metodos,
	total_comisiones_financiamiento, monto_neto_recibido, vuelto,
	created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. La base asigna el id y el
// consecutivo codigo_pedido (MAX+1, seguro dentro de la tx de la venta).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO pedidos (
			codigo_pedido, canal_id, estado_id, fecha_pedido,
			nombre_cliente, telefono_cliente, direccion_cliente, notas,
			necesita_envio, tipo_envio_id, cantidad_envio, costo_envio, ignorar_isv,
			subtotal, isv, total, total_cliente, total_comisiones_metodos,
			total_comisiones_financiamiento, monto_neto_recibido, vuelto,
			created_at, updated_at
		) VALUES (
			(SELECT COALESCE(MAX(codigo_pedido), 999) + 1 FROM pedidos),
			$1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''),
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20,
			now(), now()
		)
		RETURNING id, codigo_pedido, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.ChannelID, order.StatusID, order.OrderDate,
		order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.Notes,
		order.NeedsShipping, order.ShippingTypeID, order.ShippingQuantity, order.ShippingCost, order.IgnoreTax,
		order.Subtotal, order.Tax, order.Total, order.ClientTotal, order.MethodCommission,
		order.FinancingCommission, order.NetAmountReceived, order.Change,
	).Scan(&order.ID, &order.Code, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *OrderRepo) CreateDetail(detail *entity.OrderDetail) error {
	query := `
		INSERT INTO detalles_pedido (pedido_id, producto_id, cantidad, precio_unitario, descuento, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		detail.OrderID, detail.ProductID, detail.Quantity, detail.UnitPrice, detail.Discount, detail.Subtotal,
	).Scan(&detail.ID)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// CreatePayment persiste un pago asignado a un método.
func (r *OrderRepo) CreatePayment(payment *entity.OrderPayment) error {
	query := `
		INSERT INTO pagos_pedido (pedido_id, metodo_pago_id, monto)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		payment.OrderID, payment.PaymentMethodID, payment.Amount,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return o, nil
}

// GetDetailsByOrderID lista las líneas de detalle del pedido.
func (r *OrderRepo) GetDetailsByOrderID(orderID int64) ([]*entity.OrderDetail, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio_unitario, descuento, subtotal
		FROM detalles_pedido WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	var details []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Discount, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

// GetPaymentsByOrderID lista los pagos del pedido.
func (r *OrderRepo) GetPaymentsByOrderID(orderID int64) ([]*entity.OrderPayment, error) {
	query := `
		SELECT id, pedido_id, metodo_pago_id, monto
		FROM pagos_pedido WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()

	var payments []*entity.OrderPayment
	for rows.Next() {
		var p entity.OrderPayment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PaymentMethodID, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// Update reescribe la cabecera del pedido (el consecutivo no cambia).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE pedidos SET
			canal_id = $2, estado_id = $3, fecha_pedido = $4,
			nombre_cliente = $5, telefono_cliente = $6, direccion_cliente = NULLIF($7, ''), notas = NULLIF($8, ''),
			necesita_envio = $9, tipo_envio_id = $10, cantidad_envio = $11, costo_envio = $12, ignorar_isv = $13,
			subtotal = $14, isv = $15, total = $16, total_cliente = $17, total_comisiones_metodos = $18,
			total_comisiones_financiamiento = $19, monto_neto_recibido = $20, vuelto = $21,
			updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.ChannelID, order.StatusID, order.OrderDate,
		order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.Notes,
		order.NeedsShipping, order.ShippingTypeID, order.ShippingQuantity, order.ShippingCost, order.IgnoreTax,
		order.Subtotal, order.Tax, order.Total, order.ClientTotal, order.MethodCommission,
		order.FinancingCommission, order.NetAmountReceived, order.Change,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista pedidos más recientes primero, con filtros opcionales.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.StatusID != nil {
		query += ` AND estado_id = ` + arg(*filter.StatusID)
	}
	if filter.From != nil {
		query += ` AND fecha_pedido >= ` + arg(*filter.From)
	}
	if filter.To != nil {
		query += ` AND fecha_pedido <= ` + arg(*filter.To)
	}
	query += ` ORDER BY fecha_pedido DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ` + arg(filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Delete elimina el pedido con sus detalles y pagos.
func (r *OrderRepo) Delete(id int64) error {
	if err := r.DeleteDetails(id); err != nil {
		return err
	}
	if err := r.DeletePayments(id); err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetails borra las líneas de detalle del pedido.
func (r *OrderRepo) DeleteDetails(orderID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detalles_pedido WHERE pedido_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete detalles: %w", err)
	}
	return nil
}

// DeletePayments borra los pagos del pedido.
func (r *OrderRepo) DeletePayments(orderID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pagos_pedido WHERE pedido_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete pagos: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var address, notes *string
	err := row.Scan(
		&o.ID, &o.Code, &o.ChannelID, &o.StatusID, &o.OrderDate,
		&o.CustomerName, &o.CustomerPhone, &address, &notes,
		&o.NeedsShipping, &o.ShippingTypeID, &o.ShippingQuantity, &o.ShippingCost, &o.IgnoreTax,
		&o.Subtotal, &o.Tax, &o.Total, &o.ClientTotal, &o.MethodCommission,
		&o.FinancingCommission, &o.NetAmountReceived, &o.Change,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if address != nil {
		o.CustomerAddress = *address
	}
	if notes != nil {
		o.Notes = *notes
	}
	return &o, nil
}
