package orderstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/thrillee/revenuereport/internal/database"
	"github.com/thrillee/revenuereport/internal/metrics"
	"github.com/thrillee/revenuereport/internal/revenue"
	"github.com/thrillee/revenuereport/pkg/codes"
)

// Store reads per-day order aggregates from the shop_orders table.
//
// Filter policy: an order counts when its status is in codes.RevenueRecognizedStatuses.
// The excluded statuses are disjoint from that set so no NOT IN clause is issued.
type Store struct {
	dbQueries database.Querier
	statuses  []string
}

// New returns a Store backed by q.
func New(q database.Querier) *Store {
	return &Store{
		dbQueries: q,
		statuses:  codes.RevenueRecognizedStatuses(),
	}
}

// DailyAggregates implements revenue.OrderStore.
func (s *Store) DailyAggregates(ctx context.Context, country revenue.Country, r revenue.DateRange) ([]revenue.OrderAggregateRow, error) {
	// r.End is inclusive to the second; query with an exclusive bound one second later so
	// fractional timestamps within the final second still match.
	params := database.GetDailyCountryRevenueParams{
		Statuses:       s.statuses,
		BillingCountry: country.String(),
		StartDate:      pgtype.Timestamp{Time: r.Start, Valid: true},
		EndDate:        pgtype.Timestamp{Time: r.End.Add(time.Second), Valid: true},
	}

	slog.DebugContext(ctx, "Querying daily order aggregates",
		slog.String("country", params.BillingCountry),
		slog.Time("start", r.Start),
		slog.Time("end", r.End),
	)

	started := time.Now()
	dbRows, err := s.dbQueries.GetDailyCountryRevenue(ctx, params)
	elapsed := time.Since(started).Seconds()
	if err != nil {
		metrics.OrderStoreQuery.WithLabelValues("error").Observe(elapsed)
		slog.ErrorContext(ctx, "Daily order aggregate query failed", slog.Any("error", err))
		return nil, fmt.Errorf("query daily country revenue: %w", err)
	}
	metrics.OrderStoreQuery.WithLabelValues("ok").Observe(elapsed)

	rows := make([]revenue.OrderAggregateRow, 0, len(dbRows))
	for _, dbRow := range dbRows {
		if !dbRow.OrderDate.Valid {
			slog.WarnContext(ctx, "Skipping aggregate row without order date")
			continue
		}
		rows = append(rows, revenue.OrderAggregateRow{
			Date:          dbRow.OrderDate.Time.Format("2006-01-02"),
			OrderCount:    dbRow.TotalOrders,
			ExclTaxTotal:  dbRow.TotalExclTax,
			TaxTotal:      dbRow.TotalTax,
			RevenueTotal:  dbRow.TotalRevenue,
			ShippingTotal: dbRow.TotalShipping,
		})
	}
	return rows, nil
}

var _ revenue.OrderStore = (*Store)(nil)
