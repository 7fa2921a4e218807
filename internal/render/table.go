package render

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/thrillee/revenuereport/internal/revenue"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/revenue.html"))

// TableRow is one formatted day of the HTML table.
type TableRow struct {
	Date          string
	OrderCount    string
	ExclTaxTotal  string
	TaxTotal      string
	RevenueTotal  string
	ShippingTotal string
}

// TablePage is everything the admin page template needs.
type TablePage struct {
	Title     string
	Action    string
	Countries []revenue.CountryOption
	Country   revenue.Country
	Month     string
	Headers   []string
	Rows      []TableRow
}

// NewTablePage formats rep for display. Money gets two decimals and the currency suffix.
func NewTablePage(rep *revenue.Report, currency, action string) TablePage {
	rows := make([]TableRow, 0, len(rep.Days))
	for _, day := range rep.Days {
		rows = append(rows, TableRow{
			Date:          day.Date,
			OrderCount:    strconv.FormatInt(day.OrderCount, 10),
			ExclTaxTotal:  DisplayMoney(day.ExclTaxTotal, currency),
			TaxTotal:      DisplayMoney(day.TaxTotal, currency),
			RevenueTotal:  DisplayMoney(day.RevenueTotal, currency),
			ShippingTotal: DisplayMoney(day.ShippingTotal, currency),
		})
	}
	return TablePage{
		Title:     "Revenue report",
		Action:    action,
		Countries: revenue.Countries(),
		Country:   rep.Request.Country,
		Month:     rep.Request.Month.String(),
		Headers:   CSVHeader,
		Rows:      rows,
	}
}

// Table renders the admin page. All values are escaped by html/template.
func Table(w io.Writer, page TablePage) error {
	return pageTemplate.ExecuteTemplate(w, "revenue.html", page)
}
