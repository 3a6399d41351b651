package survey

// BandPolygon is the mean ± standard deviation envelope as a closed shape
// for filled-area rendering: the upper bound in month order followed by the
// lower bound in reverse month order, with the month labels mirrored the
// same way. The x-axis is categorical, so no cross-month interpolation is
// involved and the shape cannot self-intersect.
type BandPolygon struct {
	Months []string  `json:"months"`
	Values []float64 `json:"values"`
}

// Len returns the number of polygon points, always twice the number of
// months with data.
func (b BandPolygon) Len() int {
	return len(b.Months)
}

// ComputeBand builds the confidence band polygon from a month-ordered
// summary. Lower bound values are clamped at zero; counts cannot be
// negative, so neither can the band. An empty summary yields an empty
// polygon.
func ComputeBand(summaries []Summary) BandPolygon {
	n := len(summaries)
	if n == 0 {
		return BandPolygon{}
	}

	band := BandPolygon{
		Months: make([]string, 0, 2*n),
		Values: make([]float64, 0, 2*n),
	}

	// upper bound, month order
	for i := range summaries {
		band.Months = append(band.Months, summaries[i].Month)
		band.Values = append(band.Values, summaries[i].Mean+summaries[i].Std)
	}

	// lower bound, reverse month order, floored at zero
	for i := n - 1; i >= 0; i-- {
		lower := summaries[i].Mean - summaries[i].Std
		if lower < 0 {
			lower = 0
		}
		band.Months = append(band.Months, summaries[i].Month)
		band.Values = append(band.Values, lower)
	}

	return band
}
