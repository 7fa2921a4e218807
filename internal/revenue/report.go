package revenue

import (
	"context"
	"fmt"
)

// OrderStore is the read-only source of per-day order aggregates.
type OrderStore interface {
	// DailyAggregates returns one row per date in r that had at least one revenue-recognized
	// order billed to country.
	DailyAggregates(ctx context.Context, country Country, r DateRange) ([]OrderAggregateRow, error)
}

// Report is a generated monthly country revenue report.
type Report struct {
	Request ReportRequest
	Days    DailySeries
}

// Totals sums the whole month.
func (r *Report) Totals() DailyBucket {
	return r.Days.Totals()
}

// Generate builds the month skeleton, reads the aggregates once from store and merges them.
// A store failure is returned as an error rather than an empty report.
func Generate(ctx context.Context, store OrderStore, req ReportRequest) (*Report, error) {
	skeleton := req.Month.Skeleton()

	rows, err := store.DailyAggregates(ctx, req.Country, req.Month.Range())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order aggregates for %s %s: %w", req.Country, req.Month, err)
	}

	return &Report{
		Request: req,
		Days:    Merge(skeleton, rows),
	}, nil
}
