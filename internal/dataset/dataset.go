package dataset

import (
	"sort"

	"birdcount-go/internal/conf"
	"birdcount-go/internal/logging"
)

// Dataset is the process-wide survey dataset, loaded once at startup and
// read-only afterwards. Read-only sharing makes it safe for concurrent use
// without synchronization.
type Dataset struct {
	records []CountRecord
	areas   *AreaCollection
	species []string
	minYear int
	maxYear int
}

// Load reads the count CSV and area GeoJSON named in settings and
// cross-checks them. A count area id with no matching geometry is logged as
// a warning, not an error, since the map simply cannot color that area.
func Load(settings *conf.Settings) (*Dataset, error) {
	records, err := LoadCounts(settings.Dataset.CSVPath)
	if err != nil {
		return nil, err
	}

	areas, err := LoadAreas(settings.Dataset.GeoJSONPath)
	if err != nil {
		return nil, err
	}

	ds := New(records, areas)

	logger := logging.ForService("dataset")
	if logger != nil {
		for _, id := range ds.missingGeometry() {
			logger.Warn("count data references area with no geometry", "area", id)
		}
		logger.Info("dataset loaded",
			"records", len(ds.records),
			"species", len(ds.species),
			"areas", len(areas.IDs),
			"min_year", ds.minYear,
			"max_year", ds.maxYear,
		)
	}

	return ds, nil
}

// New builds a Dataset from already loaded records and areas.
func New(records []CountRecord, areas *AreaCollection) *Dataset {
	ds := &Dataset{
		records: records,
		areas:   areas,
	}

	seen := make(map[string]struct{})
	for i := range records {
		rec := &records[i]
		if _, ok := seen[rec.Species]; !ok {
			seen[rec.Species] = struct{}{}
			ds.species = append(ds.species, rec.Species)
		}
		if rec.Area == AreaAll {
			if ds.minYear == 0 || rec.Year < ds.minYear {
				ds.minYear = rec.Year
			}
			if rec.Year > ds.maxYear {
				ds.maxYear = rec.Year
			}
		}
	}
	sort.Strings(ds.species)

	return ds
}

// Records returns the full record set. Callers must treat the slice as
// read-only.
func (d *Dataset) Records() []CountRecord {
	return d.records
}

// Areas returns the survey area geometries.
func (d *Dataset) Areas() *AreaCollection {
	return d.areas
}

// Species returns the sorted unique species names.
func (d *Dataset) Species() []string {
	return d.species
}

// YearRange returns the inclusive year bounds of the site-wide aggregate
// series. Both are zero when the dataset has no aggregate rows.
func (d *Dataset) YearRange() (minYear, maxYear int) {
	return d.minYear, d.maxYear
}

// Len returns the number of count records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// missingGeometry returns sub-area ids present in the count data but absent
// from the geometry file.
func (d *Dataset) missingGeometry() []string {
	var missing []string
	seen := make(map[string]struct{})
	for i := range d.records {
		id := d.records[i].Area
		if id == AreaAll {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if !d.areas.HasID(id) {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
