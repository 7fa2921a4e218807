package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	paramCountry   = "country"
	paramMonth     = "month"
	paramExportCSV = "export_csv"
	paramFormat    = "format"
)

// formValue reads key from a POSTed form first, then from the query string.
func formValue(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}

// wantsCSV reports whether the caller asked for the CSV export instead of the page.
func wantsCSV(c *gin.Context) bool {
	if _, ok := c.GetPostForm(paramExportCSV); ok {
		return true
	}
	if _, ok := c.GetQuery(paramExportCSV); ok {
		return true
	}
	return strings.EqualFold(c.Query(paramFormat), "csv")
}
