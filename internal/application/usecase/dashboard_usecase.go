package usecase

import (
	"time"

	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// LowStockThreshold stock agregado por debajo del cual un producto
// aparece en la alerta del panel.
const LowStockThreshold = 5

// DashboardUseCase arma el resumen del panel a partir de consultas agregadas.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve conteos, totales del mes en curso, alerta de stock bajo
// y ventas recientes.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	counts, err := uc.repo.CountEntities()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	salesToday, err := uc.repo.SalesTotalSince(dayStart)
	if err != nil {
		return nil, err
	}
	salesMonth, err := uc.repo.SalesTotalSince(monthStart)
	if err != nil {
		return nil, err
	}
	purchasesMonth, err := uc.repo.PurchasesTotalSince(monthStart)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStockProducts(LowStockThreshold, 10)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentSales(5)
	if err != nil {
		return nil, err
	}

	lowItems := make([]dto.LowStockItemResponse, 0, len(lowStock))
	for _, p := range lowStock {
		lowItems = append(lowItems, dto.LowStockItemResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Stock:     p.Stock,
		})
	}
	recentItems := make([]dto.RecentSaleResponse, 0, len(recent))
	for _, s := range recent {
		recentItems = append(recentItems, dto.RecentSaleResponse{
			SaleID:       s.SaleID,
			CustomerName: s.CustomerName,
			Total:        s.Total,
			Date:         s.Date,
		})
	}

	return &dto.DashboardResponse{
		Categories:     counts.Categories,
		Products:       counts.Products,
		Customers:      counts.Customers,
		Suppliers:      counts.Suppliers,
		Purchases:      counts.Purchases,
		Sales:          counts.Sales,
		Returns:        counts.Returns,
		Users:          counts.Users,
		SalesToday:     salesToday,
		SalesMonth:     salesMonth,
		PurchasesMonth: purchasesMonth,
		LowStock:       lowItems,
		RecentSales:    recentItems,
	}, nil
}

// SalesByMonth serie mensual de ventas para las gráficas del panel.
func (uc *DashboardUseCase) SalesByMonth(months int) ([]dto.MonthTotalResponse, error) {
	if months <= 0 || months > 24 {
		months = 12
	}
	rows, err := uc.repo.SalesByMonth(months)
	if err != nil {
		return nil, err
	}
	return toMonthTotals(rows), nil
}

// ReturnsByMonth serie mensual de devoluciones.
func (uc *DashboardUseCase) ReturnsByMonth(months int) ([]dto.MonthTotalResponse, error) {
	if months <= 0 || months > 24 {
		months = 12
	}
	rows, err := uc.repo.ReturnsByMonth(months)
	if err != nil {
		return nil, err
	}
	return toMonthTotals(rows), nil
}

func toMonthTotals(rows []repository.MonthTotal) []dto.MonthTotalResponse {
	items := make([]dto.MonthTotalResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MonthTotalResponse{Month: r.Month, Total: r.Total})
	}
	return items
}
