// Package survey implements the statistics pipeline over the monthly count
// data: per-month descriptive statistics, the confidence band polygon for
// the shaded overlay, and frame selection for the animated map view.
//
// Every function here is a pure function from (records, filter selections)
// to a derived view. There is no hidden state, so identical inputs always
// yield identical output and results are safe to cache.
package survey

import (
	"sort"

	"birdcount-go/internal/dataset"
)

// Filter selects the site-wide aggregate rows feeding the statistics
// pipeline. Year bounds are inclusive; zero means unbounded.
type Filter struct {
	Species   string
	StartYear int
	EndYear   int
}

// Options controls the statistics formulas.
type Options struct {
	// PopulationStd selects the population standard deviation (divide by n)
	// instead of the sample formula (divide by n-1, Bessel's correction).
	// The sample formula is the default and matches the reference dataset
	// pipeline.
	PopulationStd bool
}

// Summary holds the descriptive statistics for one (month, species) group.
type Summary struct {
	Month   string  `json:"month"`
	Species string  `json:"species"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"` // number of observations in the group
}

type groupKey struct {
	monthIndex int
	species    string
}

// ComputeStats filters records to the site-wide aggregate for the filter's
// species and year range, groups them by (month, species) and computes
// descriptive statistics per group. Results are ordered by the fixed
// calendar month sequence, then species. An empty filter result yields an
// empty summary, never an error.
func ComputeStats(records []dataset.CountRecord, filter Filter, opts Options) []Summary {
	groups := make(map[groupKey][]float64)

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
		monthIndex, ok := dataset.MonthIndex(rec.Month)
		if !ok {
			// loader validates months, unreachable for loaded data
			continue
		}
		key := groupKey{monthIndex: monthIndex, species: rec.Species}
		groups[key] = append(groups[key], float64(rec.Count))
	}

	summaries := make([]Summary, 0, len(groups))
	for key, values := range groups {
		summaries = append(summaries, Summary{
			Month:   dataset.Months[key.monthIndex],
			Species: key.species,
			Mean:    mean(values),
			Median:  median(values),
			Std:     stddev(values, opts.PopulationStd),
			Min:     minValue(values),
			Max:     maxValue(values),
			Count:   len(values),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		mi, _ := dataset.MonthIndex(summaries[i].Month)
		mj, _ := dataset.MonthIndex(summaries[j].Month)
		if mi != mj {
			return mi < mj
		}
		return summaries[i].Species < summaries[j].Species
	})

	return summaries
}
