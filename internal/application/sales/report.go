package sales

import (
	"fmt"
	"time"

	"github.com/kumishop/kumi-api/internal/domain"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

// SalesReport arma el reporte de ventas del período [from, to] y lo serializa
// con el builder configurado (XML descargable).
func (uc *UseCase) SalesReport(from, to time.Time) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("reportes no configurados: %w", domain.ErrConflict)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("rango de fechas invertido: %w", domain.ErrInvalidInput)
	}

	orders, err := uc.orders.List(repository.OrderFilter{From: &from, To: &to, Limit: 10000})
	if err != nil {
		return nil, err
	}

	channelNames, err := uc.channelNames()
	if err != nil {
		return nil, err
	}
	statusNames, err := uc.statusNames()
	if err != nil {
		return nil, err
	}

	rows := make([]ReportOrder, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, ReportOrder{
			Code:              o.Code,
			OrderDate:         o.OrderDate,
			CustomerName:      o.CustomerName,
			Channel:           channelNames[o.ChannelID],
			Status:            statusNames[o.StatusID],
			Total:             o.Total,
			NetAmountReceived: o.NetAmountReceived,
		})
	}

	report, err := uc.reports.Build(from, to, rows)
	if err != nil {
		return nil, fmt.Errorf("serializar reporte: %w", err)
	}
	return report, nil
}

func (uc *UseCase) channelNames() (map[int64]string, error) {
	channels, err := uc.channels.List()
	if err != nil {
		return nil, fmt.Errorf("listar canales: %w", err)
	}
	names := make(map[int64]string, len(channels))
	for _, c := range channels {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (uc *UseCase) statusNames() (map[int64]string, error) {
	statuses, err := uc.statuses.List()
	if err != nil {
		return nil, fmt.Errorf("listar estados: %w", err)
	}
	names := make(map[int64]string, len(statuses))
	for _, s := range statuses {
		names[s.ID] = s.Name
	}
	return names, nil
}
