package revenue

import (
	"fmt"
	"strings"
	"time"
)

// ReportRequest is the validated input of a report generation.
type ReportRequest struct {
	Country Country
	Month   Month
}

// NewReportRequest builds a request from raw caller input. It never fails: an unknown country
// becomes DefaultCountry and a missing or invalid month becomes the month of now. Each fallback
// applied is returned as a warning for the caller to log.
func NewReportRequest(country, month string, now time.Time) (ReportRequest, []error) {
	var warnings []error

	c := ParseCountry(country)
	if raw := strings.TrimSpace(country); raw != "" && !strings.EqualFold(raw, c.String()) {
		warnings = append(warnings, fmt.Errorf("country %q not allowed, using %s", raw, c))
	}

	m := CurrentMonth(now)
	if raw := strings.TrimSpace(month); raw != "" {
		parsed, err := ParseMonth(raw)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%w, using %s", err, m))
		} else {
			m = parsed
		}
	}

	return ReportRequest{Country: c, Month: m}, warnings
}
