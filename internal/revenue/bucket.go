package revenue

import "github.com/shopspring/decimal"

// DailyBucket holds the order aggregates of one calendar day.
type DailyBucket struct {
	Date          string // YYYY-MM-DD
	OrderCount    int64
	ExclTaxTotal  decimal.Decimal
	TaxTotal      decimal.Decimal
	RevenueTotal  decimal.Decimal
	ShippingTotal decimal.Decimal
}

// NewDailyBucket returns a zero-valued bucket for date.
func NewDailyBucket(date string) DailyBucket {
	return DailyBucket{
		Date:          date,
		ExclTaxTotal:  decimal.Zero,
		TaxTotal:      decimal.Zero,
		RevenueTotal:  decimal.Zero,
		ShippingTotal: decimal.Zero,
	}
}

// IsZero reports whether the bucket has no orders and no amounts.
func (b DailyBucket) IsZero() bool {
	return b.OrderCount == 0 &&
		b.ExclTaxTotal.IsZero() &&
		b.TaxTotal.IsZero() &&
		b.RevenueTotal.IsZero() &&
		b.ShippingTotal.IsZero()
}

// OrderAggregateRow is one per-day row returned by an OrderStore. Stores only return
// dates that had at least one qualifying order.
type OrderAggregateRow struct {
	Date          string // YYYY-MM-DD
	OrderCount    int64
	ExclTaxTotal  decimal.Decimal
	TaxTotal      decimal.Decimal
	RevenueTotal  decimal.Decimal
	ShippingTotal decimal.Decimal
}

// DailySeries is one bucket per calendar day, ascending by date.
type DailySeries []DailyBucket

// Merge overlays rows onto skeleton by date and returns a new series. Rows whose date is
// not in the skeleton are ignored; skeleton days without a row keep their values.
func Merge(skeleton DailySeries, rows []OrderAggregateRow) DailySeries {
	merged := make(DailySeries, len(skeleton))
	copy(merged, skeleton)

	index := make(map[string]int, len(merged))
	for i, b := range merged {
		index[b.Date] = i
	}

	for _, row := range rows {
		i, ok := index[row.Date]
		if !ok {
			continue
		}
		merged[i] = DailyBucket{
			Date:          row.Date,
			OrderCount:    row.OrderCount,
			ExclTaxTotal:  row.ExclTaxTotal,
			TaxTotal:      row.TaxTotal,
			RevenueTotal:  row.RevenueTotal,
			ShippingTotal: row.ShippingTotal,
		}
	}
	return merged
}

// Totals sums every bucket of the series. The returned bucket has an empty Date.
func (s DailySeries) Totals() DailyBucket {
	total := NewDailyBucket("")
	for _, b := range s {
		total.OrderCount += b.OrderCount
		total.ExclTaxTotal = total.ExclTaxTotal.Add(b.ExclTaxTotal)
		total.TaxTotal = total.TaxTotal.Add(b.TaxTotal)
		total.RevenueTotal = total.RevenueTotal.Add(b.RevenueTotal)
		total.ShippingTotal = total.ShippingTotal.Add(b.ShippingTotal)
	}
	return total
}
