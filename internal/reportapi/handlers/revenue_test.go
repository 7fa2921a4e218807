package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrillee/revenuereport/internal/auth"
	"github.com/thrillee/revenuereport/internal/reportapi/handlers/dto"
	"github.com/thrillee/revenuereport/internal/revenue"
)

type fakeStore struct {
	rows    []revenue.OrderAggregateRow
	err     error
	country revenue.Country
	calls   int
}

func (f *fakeStore) DailyAggregates(_ context.Context, country revenue.Country, _ revenue.DateRange) ([]revenue.OrderAggregateRow, error) {
	f.calls++
	f.country = country
	return f.rows, f.err
}

func june15() []revenue.OrderAggregateRow {
	return []revenue.OrderAggregateRow{{
		Date:          "2024-06-15",
		OrderCount:    1,
		ExclTaxTotal:  decimal.RequireFromString("100"),
		TaxTotal:      decimal.RequireFromString("21"),
		RevenueTotal:  decimal.RequireFromString("121"),
		ShippingTotal: decimal.RequireFromString("5"),
	}}
}

func newTestRouter(store revenue.OrderStore, creds auth.Credentials) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	SetupRoutes(router, router.Group("/api/v1"), store, creds, ReportOptions{
		Currency:     "€",
		QueryTimeout: time.Second,
		Now:          func() time.Time { return time.Date(2024, 6, 18, 9, 0, 0, 0, time.UTC) },
	})
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExportRevenueCSV(t *testing.T) {
	store := &fakeStore{rows: june15()}
	router := newTestRouter(store, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue.csv?country=BE&month=2024-06", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv; charset=UTF-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="revenue_BE.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 31)
	assert.Equal(t, []string{"Date", "Order Count", "Revenue Excl. Tax", "Total Tax", "Total Revenue", "Shipping Fees"}, records[0])
	assert.Equal(t, []string{"2024-06-15", "1", "100.00", "21.00", "121.00", "5.00"}, records[15])
	assert.Equal(t, revenue.Belgium, store.country)
}

func TestExportRevenueCSVUnknownCountryUsesFrance(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue.csv?country=XX&month=2024-02", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="revenue_FR.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, revenue.France, store.country)

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 29+1)
}

func TestExportRevenueCSVStoreFailure(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("db down")}, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue.csv?month=2024-06", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.NotContains(t, w.Body.String(), "Date,Order Count")
}

func TestRevenuePageHTML(t *testing.T) {
	router := newTestRouter(&fakeStore{rows: june15()}, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/admin/revenue?country=FR&month=2024-06", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	tbody := body[strings.Index(body, "<tbody>"):strings.Index(body, "</tbody>")]
	assert.Equal(t, 30, strings.Count(tbody, "<tr>"))
	assert.Contains(t, tbody, "<td>121.00 €</td>")
}

func TestRevenuePagePostExportsCSV(t *testing.T) {
	router := newTestRouter(&fakeStore{rows: june15()}, auth.Credentials{})

	form := url.Values{"country": {"LU"}, "month": {"2024-06"}, "export_csv": {"Export CSV"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/revenue", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="revenue_LU.csv"`, w.Header().Get("Content-Disposition"))
}

func TestRevenuePageInvalidMonthFallsBackToCurrent(t *testing.T) {
	router := newTestRouter(&fakeStore{}, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/admin/revenue?month=June", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="2024-06"`)
	assert.Contains(t, w.Body.String(), "<td>2024-06-30</td>")
}

func TestRevenuePageStoreFailure(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("db down")}, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/admin/revenue", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "<table")
}

func TestGetRevenueJSON(t *testing.T) {
	router := newTestRouter(&fakeStore{rows: june15()}, auth.Credentials{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue?country=XX&month=2024-06", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RevenueReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FR", resp.Country)
	assert.Equal(t, "2024-06", resp.Month)
	assert.Len(t, resp.Days, 30)
	assert.Len(t, resp.Warnings, 1)
	assert.Equal(t, int64(1), resp.Totals.OrderCount)
	assert.True(t, resp.Totals.RevenueTotal.Equal(decimal.NewFromInt(121)))
}

func TestReportRoutesRequireAuth(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	router := newTestRouter(&fakeStore{}, auth.Credentials{User: "admin", PasswordHash: hash})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/admin/revenue", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue.csv", nil)
	req.SetBasicAuth("admin", "s3cret")
	w = serve(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newTestRouter(&fakeStore{}, auth.Credentials{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := serve(router, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}
