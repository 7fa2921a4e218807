package revenue

import "strings"

// Country is an ISO-3166 alpha-2 billing country code.
type Country string

const (
	France      Country = "FR"
	Belgium     Country = "BE"
	Luxembourg  Country = "LU"
	Switzerland Country = "CH"

	DefaultCountry = France
)

// CountryOption pairs an allow-listed code with its display name.
type CountryOption struct {
	Code Country
	Name string
}

var countries = []CountryOption{
	{Code: France, Name: "France"},
	{Code: Belgium, Name: "Belgium"},
	{Code: Luxembourg, Name: "Luxembourg"},
	{Code: Switzerland, Name: "Switzerland"},
}

// Countries returns the allow-listed report countries in display order.
func Countries() []CountryOption {
	out := make([]CountryOption, len(countries))
	copy(out, countries)
	return out
}

// Allowed reports whether c is one of the report countries.
func (c Country) Allowed() bool {
	for _, opt := range countries {
		if opt.Code == c {
			return true
		}
	}
	return false
}

func (c Country) String() string { return string(c) }

// ParseCountry normalizes s and falls back to DefaultCountry when it is not allow-listed.
func ParseCountry(s string) Country {
	c := Country(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Allowed() {
		return DefaultCountry
	}
	return c
}
