package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdcount-go/internal/dataset"
)

func rec(area, species string, year int, month, date string, count int) dataset.CountRecord {
	return dataset.CountRecord{
		Area:    area,
		Species: species,
		Year:    year,
		Month:   month,
		Date:    date,
		Count:   count,
	}
}

func crowRecords() []dataset.CountRecord {
	return []dataset.CountRecord{
		rec("ALL", "Crow", 2020, "Jan", "2020-01-12", 4),
		rec("ALL", "Crow", 2020, "Jan", "2020-01-26", 6),
		rec("ALL", "Crow", 2020, "Jan", "2020-01-31", 10),
		rec("ALL", "Crow", 2020, "Feb", "2020-02-09", 8),
		rec("ALL", "Crow", 2021, "Jan", "2021-01-10", 20),
		// sub-area rows, never part of the stats pipeline
		rec("EST", "Crow", 2020, "Jan", "2020-01-12", 2),
		rec("RIV", "Crow", 2020, "Jan", "2020-01-12", 1),
		// another species
		rec("ALL", "Bald Eagle", 2020, "Jan", "2020-01-12", 30),
	}
}

func TestComputeStatsReferenceValues(t *testing.T) {
	t.Parallel()

	// Crow, area ALL, year 2020 only, Jan counts [4, 6, 10]
	summaries := ComputeStats(crowRecords(), Filter{Species: "Crow", StartYear: 2020, EndYear: 2020}, Options{})
	require.Len(t, summaries, 2)

	jan := summaries[0]
	assert.Equal(t, "Jan", jan.Month)
	assert.Equal(t, "Crow", jan.Species)
	assert.InDelta(t, 6.667, jan.Mean, 0.001)
	assert.InDelta(t, 6, jan.Median, 0.0001)
	assert.InDelta(t, 3.055, jan.Std, 0.001, "sample standard deviation")
	assert.InDelta(t, 4, jan.Min, 0.0001)
	assert.InDelta(t, 10, jan.Max, 0.0001)
	assert.Equal(t, 3, jan.Count)

	feb := summaries[1]
	assert.Equal(t, "Feb", feb.Month)
	assert.InDelta(t, 8, feb.Mean, 0.0001)
	assert.Zero(t, feb.Std, "single observation resolves to zero, not NaN")
	assert.Equal(t, 1, feb.Count)
}

func TestComputeStatsPopulationStd(t *testing.T) {
	t.Parallel()

	summaries := ComputeStats(crowRecords(), Filter{Species: "Crow", StartYear: 2020, EndYear: 2020}, Options{PopulationStd: true})
	require.NotEmpty(t, summaries)

	// population std of [4, 6, 10] = sqrt(18.667/3) = 2.494
	assert.InDelta(t, 2.494, summaries[0].Std, 0.001)
}

func TestComputeStatsMonthCalendarOrder(t *testing.T) {
	t.Parallel()

	// Aug/Apr/Dec/Feb would sort alphabetically as Apr,Aug,Dec,Feb
	records := []dataset.CountRecord{
		rec("ALL", "Crow", 2020, "Dec", "2020-12-13", 1),
		rec("ALL", "Crow", 2020, "Apr", "2020-04-12", 2),
		rec("ALL", "Crow", 2020, "Aug", "2020-08-09", 3),
		rec("ALL", "Crow", 2020, "Feb", "2020-02-09", 4),
	}
	summaries := ComputeStats(records, Filter{Species: "Crow"}, Options{})
	require.Len(t, summaries, 4)

	months := make([]string, len(summaries))
	for i := range summaries {
		months[i] = summaries[i].Month
	}
	assert.Equal(t, []string{"Feb", "Apr", "Aug", "Dec"}, months)
}

func TestComputeStatsYearRange(t *testing.T) {
	t.Parallel()

	records := crowRecords()

	// unbounded: both 2020 and 2021 Jan rows contribute
	all := ComputeStats(records, Filter{Species: "Crow"}, Options{})
	require.NotEmpty(t, all)
	assert.Equal(t, 4, all[0].Count, "Jan group spans both years")

	// only 2021
	later := ComputeStats(records, Filter{Species: "Crow", StartYear: 2021}, Options{})
	require.Len(t, later, 1)
	assert.InDelta(t, 20, later[0].Mean, 0.0001)

	// open-ended upper bound
	upTo := ComputeStats(records, Filter{Species: "Crow", EndYear: 2020}, Options{})
	require.Len(t, upTo, 2)
	assert.Equal(t, 3, upTo[0].Count)
}

func TestComputeStatsEmptyResult(t *testing.T) {
	t.Parallel()

	summaries := ComputeStats(crowRecords(), Filter{Species: "Pileated Woodpecker"}, Options{})
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries, "unknown species yields zero rows, not an error")

	summaries = ComputeStats(nil, Filter{Species: "Crow"}, Options{})
	assert.Empty(t, summaries)
}

func TestComputeStatsIdempotent(t *testing.T) {
	t.Parallel()

	records := crowRecords()
	filter := Filter{Species: "Crow", StartYear: 2020, EndYear: 2020}

	first := ComputeStats(records, filter, Options{})
	second := ComputeStats(records, filter, Options{})
	assert.Equal(t, first, second)
}

func TestDescriptiveHelpers(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5, median([]float64{9, 1, 5}), 0.0001)
	assert.InDelta(t, 3.5, median([]float64{2, 5, 1, 6}), 0.0001, "even-length median averages the middle pair")
	assert.Zero(t, median(nil))
	assert.Zero(t, stddev([]float64{7}, false))
	assert.Zero(t, stddev(nil, false))
	assert.InDelta(t, 1, minValue([]float64{3, 1, 2}), 0.0001)
	assert.InDelta(t, 3, maxValue([]float64{3, 1, 2}), 0.0001)
}
