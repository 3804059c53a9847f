package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kumishop/kumi-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics agrega las cifras de ventas en [from, to).
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (*repository.SalesMetrics, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(SUM(monto_neto_recibido), 0),
			COALESCE(SUM(total_comisiones_metodos + total_comisiones_financiamiento), 0),
			COALESCE(SUM(costo_envio), 0)
		FROM pedidos
		WHERE fecha_pedido >= $1 AND fecha_pedido < $2`
	var m repository.SalesMetrics
	err := r.q.QueryRow(ctx, query, from, to).Scan(
		&m.OrderCount, &m.GrossSales, &m.NetReceived, &m.TotalCommissions, &m.ShippingCharged)
	if err != nil {
		return nil, fmt.Errorf("metricas de ventas: %w", err)
	}
	return &m, nil
}

// GetTopProducts devuelve los productos más vendidos por unidades en [from, to).
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT d.producto_id, p.nombre, SUM(d.cantidad), COALESCE(SUM(d.subtotal), 0)
		FROM detalles_pedido d
		JOIN pedidos o ON o.id = d.pedido_id
		JOIN products p ON p.id = d.producto_id
		WHERE o.fecha_pedido >= $1 AND o.fecha_pedido < $2
		GROUP BY d.producto_id, p.nombre
		ORDER BY SUM(d.cantidad) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// GetSalesByChannel agrega ventas por canal en [from, to).
func (r *AnalyticsRepo) GetSalesByChannel(ctx context.Context, from, to time.Time) ([]repository.ChannelSalesResult, error) {
	query := `
		SELECT c.id, c.nombre, COUNT(o.id), COALESCE(SUM(o.total), 0), COALESCE(SUM(o.monto_neto_recibido), 0)
		FROM canales c
		JOIN pedidos o ON o.canal_id = c.id
		WHERE o.fecha_pedido >= $1 AND o.fecha_pedido < $2
		GROUP BY c.id, c.nombre
		ORDER BY SUM(o.total) DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventas por canal: %w", err)
	}
	defer rows.Close()

	var results []repository.ChannelSalesResult
	for rows.Next() {
		var c repository.ChannelSalesResult
		if err := rows.Scan(&c.ChannelID, &c.ChannelName, &c.OrderCount, &c.GrossSales, &c.NetReceived); err != nil {
			return nil, fmt.Errorf("scan canal: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
