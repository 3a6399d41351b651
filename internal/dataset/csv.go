package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"birdcount-go/internal/errors"
)

// countColumns are the named columns LoadCounts requires. The reference data
// pipeline writes an unnamed leading index column, so columns are resolved by
// header name rather than position.
var countColumns = []string{"id", "species", "year", "month", "date", "count"}

// LoadCounts reads monthly count records from a CSV file. The file must have
// a header row naming at least the id, species, year, month, date and count
// columns; any other columns are ignored.
func LoadCounts(path string) ([]CountRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()

	records, err := parseCounts(f)
	if err != nil {
		return nil, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	return records, nil
}

func parseCounts(r io.Reader) ([]CountRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range countColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	var records []CountRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		rec, err := parseRow(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(fields []string, cols map[string]int) (CountRecord, error) {
	rec := CountRecord{
		Area:    fields[cols["id"]],
		Species: fields[cols["species"]],
		Month:   fields[cols["month"]],
		Date:    fields[cols["date"]],
	}

	if rec.Area == "" {
		return rec, fmt.Errorf("empty area id")
	}
	if rec.Species == "" {
		return rec, fmt.Errorf("empty species")
	}
	if _, ok := MonthIndex(rec.Month); !ok {
		return rec, fmt.Errorf("unknown month abbreviation %q", rec.Month)
	}

	year, err := strconv.Atoi(fields[cols["year"]])
	if err != nil || year <= 0 {
		return rec, fmt.Errorf("invalid year %q", fields[cols["year"]])
	}
	rec.Year = year

	count, err := strconv.Atoi(fields[cols["count"]])
	if err != nil || count < 0 {
		return rec, fmt.Errorf("invalid count %q", fields[cols["count"]])
	}
	rec.Count = count

	return rec, nil
}
