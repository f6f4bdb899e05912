package services

import "github.com/terraincognita07/constancia/internal/models"

// BalanceSummary aggregates a user's sale snapshots and operating costs.
// Figures come from the per-unit snapshots, so product edits made after a
// sale do not move historical numbers.
type BalanceSummary struct {
	UnitsSold      int     `json:"units_sold"`
	Revenue        float64 `json:"revenue"`
	GoodsCost      float64 `json:"goods_cost"`
	SalesMargin    float64 `json:"sales_margin"`
	Points         float64 `json:"points"`
	OperatingCosts float64 `json:"operating_costs"`
	Net            float64 `json:"net"`
}

func BuildBalance(document *models.Document, userName string) BalanceSummary {
	summary := BalanceSummary{}
	for _, sale := range document.Sales[userName] {
		summary.UnitsSold++
		summary.Revenue += sale.UnitPrice
		summary.GoodsCost += sale.UnitCost
		summary.SalesMargin += sale.UnitMargin
		summary.Points += sale.Points
	}
	for _, cost := range document.Costs[userName] {
		summary.OperatingCosts += cost.Amount
	}
	summary.Net = summary.SalesMargin - summary.OperatingCosts
	return summary
}
