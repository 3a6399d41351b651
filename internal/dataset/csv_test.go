package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdcount-go/internal/errors"
)

const sampleCSV = `,id,species,year,month,date,count
0,ALL,Crow,2020,Jan,2020-01-12,4
1,ALL,Crow,2021,Jan,2021-01-10,6
2,EST,Crow,2020,Jan,2020-01-12,2
3,ALL,Bald Eagle,2020,Feb,2020-02-09,11
`

func TestParseCounts(t *testing.T) {
	t.Parallel()

	records, err := parseCounts(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, CountRecord{
		Area:    "ALL",
		Species: "Crow",
		Year:    2020,
		Month:   "Jan",
		Date:    "2020-01-12",
		Count:   4,
	}, records[0])
	assert.Equal(t, "EST", records[2].Area)
	assert.Equal(t, "Bald Eagle", records[3].Species)
}

func TestParseCountsColumnOrderIndependent(t *testing.T) {
	t.Parallel()

	csv := "count,species,month,year,date,id\n3,Crow,Jan,2020,2020-01-12,ALL\n"
	records, err := parseCounts(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Count)
	assert.Equal(t, "ALL", records[0].Area)
}

func TestParseCountsMissingColumn(t *testing.T) {
	t.Parallel()

	csv := ",id,species,year,month,date\n0,ALL,Crow,2020,Jan,2020-01-12\n"
	_, err := parseCounts(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "count"`)
}

func TestParseCountsMalformedRows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		row  string
		want string
	}{
		{"bad month", "0,ALL,Crow,2020,January,2020-01-12,4", "unknown month"},
		{"negative count", "0,ALL,Crow,2020,Jan,2020-01-12,-1", "invalid count"},
		{"non-numeric count", "0,ALL,Crow,2020,Jan,2020-01-12,lots", "invalid count"},
		{"bad year", "0,ALL,Crow,zero,Jan,2020-01-12,4", "invalid year"},
		{"empty species", "0,ALL,,2020,Jan,2020-01-12,4", "empty species"},
		{"empty area", "0,,Crow,2020,Jan,2020-01-12,4", "empty area"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			csv := ",id,species,year,month,date,count\n" + tc.row + "\n"
			_, err := parseCounts(strings.NewReader(csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, err.Error(), "row 2", "error should carry the row number")
		})
	}
}

func TestLoadCountsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCounts(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var ee *errors.EnhancedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, errors.CategoryFileIO, ee.Category)
}

func TestLoadCountsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counts.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, err := LoadCounts(path)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}
