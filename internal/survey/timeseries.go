package survey

import (
	"sort"

	"birdcount-go/internal/dataset"
)

// SeriesPoint is one month's observation within a year series.
type SeriesPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// YearSeries is the month-ordered site-wide counts for one survey year,
// rendered as one line in the time-series chart.
type YearSeries struct {
	Year   int           `json:"year"`
	Points []SeriesPoint `json:"points"`
}

// SelectTimeSeries filters the site-wide aggregate rows by the given filter
// and groups them into one series per year, years ascending, points in
// calendar month order.
func SelectTimeSeries(records []dataset.CountRecord, filter Filter) []YearSeries {
	byYear := make(map[int][]SeriesPoint)

	for i := range records {
		rec := &records[i]
		if rec.Area != dataset.AreaAll {
			continue
		}
		if rec.Species != filter.Species {
			continue
		}
		if filter.StartYear != 0 && rec.Year < filter.StartYear {
			continue
		}
		if filter.EndYear != 0 && rec.Year > filter.EndYear {
			continue
		}
		byYear[rec.Year] = append(byYear[rec.Year], SeriesPoint{
			Month: rec.Month,
			Count: rec.Count,
		})
	}

	series := make([]YearSeries, 0, len(byYear))
	for year, points := range byYear {
		sort.Slice(points, func(i, j int) bool {
			mi, _ := dataset.MonthIndex(points[i].Month)
			mj, _ := dataset.MonthIndex(points[j].Month)
			return mi < mj
		})
		series = append(series, YearSeries{Year: year, Points: points})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Year < series[j].Year
	})

	return series
}
