package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thrillee/revenuereport/internal/logging"
	"github.com/thrillee/revenuereport/internal/metrics"
	"github.com/thrillee/revenuereport/internal/render"
	"github.com/thrillee/revenuereport/internal/reportapi/handlers/dto"
	"github.com/thrillee/revenuereport/internal/revenue"
)

// ReportOptions configures how reports are produced and presented.
type ReportOptions struct {
	Currency     string
	Location     *time.Location
	QueryTimeout time.Duration
	Now          func() time.Time // defaults to time.Now
}

type ReportHandler struct {
	store revenue.OrderStore
	opts  ReportOptions
}

func NewReportHandler(store revenue.OrderStore, opts ReportOptions) *ReportHandler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ReportHandler{store: store, opts: opts}
}

// RevenuePage handles GET|POST /admin/revenue: the HTML table, or the CSV download when
// the export flag is set.
func (h *ReportHandler) RevenuePage(c *gin.Context) {
	if wantsCSV(c) {
		h.ExportRevenueCSV(c)
		return
	}

	logCtx := logging.ContextWithHandler(c.Request.Context(), "RevenuePage")
	logCtx = logging.ContextWithFormat(logCtx, metrics.FormatHTML)

	rep, _, err := h.generate(logCtx, c)
	if err != nil {
		metrics.ReportFailures.WithLabelValues(metrics.FormatHTML).Inc()
		c.String(http.StatusInternalServerError, "Failed to generate revenue report")
		return
	}

	var buf bytes.Buffer
	page := render.NewTablePage(rep, h.opts.Currency, c.Request.URL.Path)
	if err := render.Table(&buf, page); err != nil {
		slog.ErrorContext(logCtx, "Failed to render revenue table", slog.Any("error", err))
		metrics.ReportFailures.WithLabelValues(metrics.FormatHTML).Inc()
		c.String(http.StatusInternalServerError, "Failed to render revenue report")
		return
	}

	metrics.ReportsGenerated.WithLabelValues(metrics.FormatHTML, rep.Request.Country.String()).Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ExportRevenueCSV handles GET /reports/revenue.csv. The file is rendered in memory first so
// a failure never produces a partial download.
func (h *ReportHandler) ExportRevenueCSV(c *gin.Context) {
	logCtx := logging.ContextWithHandler(c.Request.Context(), "ExportRevenueCSV")
	logCtx = logging.ContextWithFormat(logCtx, metrics.FormatCSV)

	rep, _, err := h.generate(logCtx, c)
	if err != nil {
		metrics.ReportFailures.WithLabelValues(metrics.FormatCSV).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate revenue report"})
		return
	}

	var buf bytes.Buffer
	if err := render.CSV(&buf, rep); err != nil {
		slog.ErrorContext(logCtx, "Failed to write revenue CSV", slog.Any("error", err))
		metrics.ReportFailures.WithLabelValues(metrics.FormatCSV).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write revenue CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+render.CSVFilename(rep.Request.Country)+`"`)
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	metrics.ReportsGenerated.WithLabelValues(metrics.FormatCSV, rep.Request.Country.String()).Inc()
	slog.InfoContext(logCtx, "Revenue CSV exported", slog.Int("rows", len(rep.Days)), slog.Int("bytes", buf.Len()))
	c.Data(http.StatusOK, render.CSVContentType, buf.Bytes())
}

// GetRevenue handles GET /reports/revenue.
func (h *ReportHandler) GetRevenue(c *gin.Context) {
	logCtx := logging.ContextWithHandler(c.Request.Context(), "GetRevenue")
	logCtx = logging.ContextWithFormat(logCtx, metrics.FormatJSON)

	rep, warnings, err := h.generate(logCtx, c)
	if err != nil {
		metrics.ReportFailures.WithLabelValues(metrics.FormatJSON).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve revenue report"})
		return
	}

	resp := dto.RevenueReportResponse{
		Country: rep.Request.Country.String(),
		Month:   rep.Request.Month.String(),
		Days:    make([]dto.DailyRevenueRow, 0, len(rep.Days)),
	}
	for _, day := range rep.Days {
		resp.Days = append(resp.Days, dto.DailyRevenueRow{
			Date:          day.Date,
			OrderCount:    day.OrderCount,
			ExclTaxTotal:  day.ExclTaxTotal,
			TaxTotal:      day.TaxTotal,
			RevenueTotal:  day.RevenueTotal,
			ShippingTotal: day.ShippingTotal,
		})
	}
	totals := rep.Totals()
	resp.Totals = dto.RevenueTotals{
		OrderCount:    totals.OrderCount,
		ExclTaxTotal:  totals.ExclTaxTotal,
		TaxTotal:      totals.TaxTotal,
		RevenueTotal:  totals.RevenueTotal,
		ShippingTotal: totals.ShippingTotal,
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, w.Error())
	}

	metrics.ReportsGenerated.WithLabelValues(metrics.FormatJSON, resp.Country).Inc()
	c.JSON(http.StatusOK, resp)
}

// generate parses the request parameters, applying the permissive defaults, and runs the
// report against the order store.
func (h *ReportHandler) generate(ctx context.Context, c *gin.Context) (*revenue.Report, []error, error) {
	now := h.opts.Now().In(h.opts.Location)
	req, warnings := revenue.NewReportRequest(formValue(c, paramCountry), formValue(c, paramMonth), now)

	ctx = logging.ContextWithCountry(ctx, req.Country.String())
	ctx = logging.ContextWithMonth(ctx, req.Month.String())
	for _, w := range warnings {
		slog.WarnContext(ctx, "Report parameter replaced by default", slog.Any("reason", w))
	}

	if h.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.QueryTimeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "Generating revenue report")
	rep, err := revenue.Generate(ctx, h.store, req)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to generate revenue report", slog.Any("error", err))
		return nil, warnings, err
	}
	return rep, warnings, nil
}
