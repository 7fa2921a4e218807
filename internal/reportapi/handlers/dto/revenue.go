package dto

import "github.com/shopspring/decimal"

// DailyRevenueRow is one calendar day of the report.
type DailyRevenueRow struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	OrderCount    int64           `json:"order_count"`
	ExclTaxTotal  decimal.Decimal `json:"excl_tax_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	RevenueTotal  decimal.Decimal `json:"revenue_total"`
	ShippingTotal decimal.Decimal `json:"shipping_total"`
}

// RevenueTotals sums the whole month.
type RevenueTotals struct {
	OrderCount    int64           `json:"order_count"`
	ExclTaxTotal  decimal.Decimal `json:"excl_tax_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	RevenueTotal  decimal.Decimal `json:"revenue_total"`
	ShippingTotal decimal.Decimal `json:"shipping_total"`
}

// RevenueReportResponse is the JSON form of a monthly country revenue report.
// Country and Month are the effective values after defaulting.
type RevenueReportResponse struct {
	Country  string            `json:"country"`
	Month    string            `json:"month"`
	Days     []DailyRevenueRow `json:"days"`
	Totals   RevenueTotals     `json:"totals"`
	Warnings []string          `json:"warnings,omitempty"`
}
