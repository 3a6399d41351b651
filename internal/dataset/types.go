// Package dataset loads the monthly bird count survey data and area
// geometries into immutable in-memory structures at process start.
package dataset

// AreaAll is the sentinel area id representing the whole-site aggregate,
// used for time-series analysis as opposed to per-area spatial analysis.
const AreaAll = "ALL"

// Months is the fixed calendar sequence of month abbreviations. Grouped and
// plotted data must follow this order; the default string ordering of month
// abbreviations is alphabetical and therefore never used.
var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(Months))
	for i, name := range Months {
		m[name] = i
	}
	return m
}()

// MonthIndex returns the zero-based calendar position of a month
// abbreviation, and false if the abbreviation is not one of the twelve.
func MonthIndex(month string) (int, bool) {
	i, ok := monthIndex[month]
	return i, ok
}

// CountRecord is a single monthly survey observation. Records are immutable
// once loaded.
type CountRecord struct {
	Area    string `json:"area"`    // area id, AreaAll for the site-wide aggregate
	Species string `json:"species"` // species name as recorded in the survey
	Year    int    `json:"year"`
	Month   string `json:"month"` // one of Months
	Date    string `json:"date"`  // survey date, YYYY-MM-DD
	Count   int    `json:"count"` // non-negative observation count
}
