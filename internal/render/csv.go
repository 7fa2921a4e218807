package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/thrillee/revenuereport/internal/revenue"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"Date", "Order Count", "Revenue Excl. Tax", "Total Tax", "Total Revenue", "Shipping Fees"}

// CSVContentType is the response content type for exports.
const CSVContentType = "text/csv; charset=UTF-8"

// CSVFilename names the download for country.
func CSVFilename(country revenue.Country) string {
	return fmt.Sprintf("revenue_%s.csv", country)
}

// CSV writes the header followed by one row per day of the report.
func CSV(w io.Writer, rep *revenue.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, day := range rep.Days {
		record := []string{
			day.Date,
			strconv.FormatInt(day.OrderCount, 10),
			Money(day.ExclTaxTotal),
			Money(day.TaxTotal),
			Money(day.RevenueTotal),
			Money(day.ShippingTotal),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", day.Date, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
