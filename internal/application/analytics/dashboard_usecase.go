// Package analytics arma el resumen financiero del dashboard.
package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kumishop/kumi-api/internal/application/dto"
	"github.com/kumishop/kumi-api/internal/domain/repository"
)

const topProductsLimit = 5

// DashboardUseCase consultas agregadas para el panel principal.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(analytics repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics}
}

// Summary arma el resumen del día y del mes en curso. Las cuatro consultas
// corren en paralelo; cualquier fallo cancela el resto.
func (uc *DashboardUseCase) Summary(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var (
		today    *repository.SalesMetrics
		month    *repository.SalesMetrics
		top      []repository.TopProductResult
		channels []repository.ChannelSalesResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		today, err = uc.analytics.GetSalesMetrics(gctx, dayStart, dayEnd)
		return err
	})
	g.Go(func() (err error) {
		month, err = uc.analytics.GetSalesMetrics(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		top, err = uc.analytics.GetTopProducts(gctx, monthStart, monthEnd, topProductsLimit)
		return err
	})
	g.Go(func() (err error) {
		channels, err = uc.analytics.GetSalesByChannel(gctx, monthStart, monthEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:        today.GrossSales,
		TodayOrders:       today.OrderCount,
		TodayNetReceived:  today.NetReceived,
		MonthlySales:      month.GrossSales,
		MonthlyOrders:     month.OrderCount,
		MonthlyNet:        month.NetReceived,
		MonthlyCommission: month.TotalCommissions,
		TopProducts:       make([]dto.TopProductDTO, 0, len(top)),
		SalesByChannel:    make([]dto.ChannelSalesDTO, 0, len(channels)),
	}
	for _, p := range top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			UnitsSold:   p.UnitsSold,
			Revenue:     p.Revenue,
		})
	}
	for _, c := range channels {
		summary.SalesByChannel = append(summary.SalesByChannel, dto.ChannelSalesDTO{
			ChannelID:   c.ChannelID,
			ChannelName: c.ChannelName,
			OrderCount:  c.OrderCount,
			GrossSales:  c.GrossSales,
			NetReceived: c.NetReceived,
		})
	}
	return summary, nil
}
