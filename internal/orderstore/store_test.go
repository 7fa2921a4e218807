package orderstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrillee/revenuereport/internal/database"
	"github.com/thrillee/revenuereport/internal/revenue"
	"github.com/thrillee/revenuereport/pkg/codes"
)

type fakeQuerier struct {
	rows []database.GetDailyCountryRevenueRow
	err  error
	got  database.GetDailyCountryRevenueParams
}

func (f *fakeQuerier) GetDailyCountryRevenue(_ context.Context, arg database.GetDailyCountryRevenueParams) ([]database.GetDailyCountryRevenueRow, error) {
	f.got = arg
	return f.rows, f.err
}

func TestDailyAggregatesParams(t *testing.T) {
	q := &fakeQuerier{}
	m, err := revenue.ParseMonth("2024-02")
	require.NoError(t, err)

	_, err = New(q).DailyAggregates(context.Background(), revenue.Belgium, m.Range())
	require.NoError(t, err)

	assert.Equal(t, "BE", q.got.BillingCountry)
	assert.ElementsMatch(t, codes.RevenueRecognizedStatuses(), q.got.Statuses)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), q.got.StartDate.Time)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), q.got.EndDate.Time)
	assert.True(t, q.got.StartDate.Valid)
	assert.True(t, q.got.EndDate.Valid)
}

func TestDailyAggregatesMapsRows(t *testing.T) {
	q := &fakeQuerier{rows: []database.GetDailyCountryRevenueRow{
		{
			OrderDate:     pgtype.Date{Time: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Valid: true},
			TotalOrders:   1,
			TotalExclTax:  decimal.RequireFromString("100"),
			TotalTax:      decimal.RequireFromString("21"),
			TotalRevenue:  decimal.RequireFromString("121"),
			TotalShipping: decimal.RequireFromString("5"),
		},
		{OrderDate: pgtype.Date{}},
	}}
	m, err := revenue.ParseMonth("2024-06")
	require.NoError(t, err)

	rows, err := New(q).DailyAggregates(context.Background(), revenue.France, m.Range())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "2024-06-15", rows[0].Date)
	assert.Equal(t, int64(1), rows[0].OrderCount)
	assert.True(t, rows[0].RevenueTotal.Equal(decimal.NewFromInt(121)))
	assert.True(t, rows[0].ShippingTotal.Equal(decimal.NewFromInt(5)))
}

func TestDailyAggregatesWrapsQueryError(t *testing.T) {
	boom := errors.New("relation \"shop_orders\" does not exist")
	q := &fakeQuerier{err: boom}
	m, err := revenue.ParseMonth("2024-06")
	require.NoError(t, err)

	rows, err := New(q).DailyAggregates(context.Background(), revenue.France, m.Range())
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, boom)
}
