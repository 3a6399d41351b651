package survey

import (
	"sort"

	"birdcount-go/internal/dataset"
)

// AreaCount is one area's raw count within a map frame.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// MapFrame is one time-stamped snapshot of per-area counts, a single step
// in the animated choropleth view.
type MapFrame struct {
	Date   string      `json:"date"`
	Counts []AreaCount `json:"counts"`
}

// SelectMapFrames filters records to all sub-areas (the site-wide aggregate
// is excluded) for the given species and groups them into one frame per
// survey date, ascending. Counts within a frame are raw per-area values for
// that date; there is no aggregation across dates.
func SelectMapFrames(records []dataset.CountRecord, species string) []MapFrame {
	byDate := make(map[string][]AreaCount)

	for i := range records {
		rec := &records[i]
		if rec.Area == dataset.AreaAll {
			continue
		}
		if rec.Species != species {
			continue
		}
		byDate[rec.Date] = append(byDate[rec.Date], AreaCount{
			Area:  rec.Area,
			Count: rec.Count,
		})
	}

	frames := make([]MapFrame, 0, len(byDate))
	for date, counts := range byDate {
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].Area < counts[j].Area
		})
		frames = append(frames, MapFrame{Date: date, Counts: counts})
	}

	// ISO dates sort chronologically as strings
	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Date < frames[j].Date
	})

	return frames
}

// MaxCount returns the largest count across all frames, used by the map
// renderer to fix the color scale range over the whole animation.
func MaxCount(frames []MapFrame) int {
	maxCount := 0
	for i := range frames {
		for _, ac := range frames[i].Counts {
			if ac.Count > maxCount {
				maxCount = ac.Count
			}
		}
	}
	return maxCount
}
