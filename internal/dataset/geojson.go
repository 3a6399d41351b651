package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"birdcount-go/internal/errors"
)

// AreaCollection holds the survey area boundaries. The raw GeoJSON document
// is retained verbatim so the map endpoint can serve it unchanged; feature
// ids are indexed for cross-validation against the count data.
type AreaCollection struct {
	Raw json.RawMessage // the GeoJSON FeatureCollection as loaded
	IDs []string        // feature ids in document order
}

// HasID reports whether the collection contains a feature with the given id.
func (a *AreaCollection) HasID(id string) bool {
	for _, known := range a.IDs {
		if known == id {
			return true
		}
	}
	return false
}

type geoFeature struct {
	Type       string `json:"type"`
	Properties struct {
		ID string `json:"id"`
	} `json:"properties"`
}

type geoFeatureCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// LoadAreas reads the survey area GeoJSON file. Every feature must carry a
// string `properties.id` matching the area ids used in the count data.
func LoadAreas(path string) (*AreaCollection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	collection, err := parseAreas(raw)
	if err != nil {
		return nil, errors.New(err).
			Component("dataset").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	return collection, nil
}

func parseAreas(raw []byte) (*AreaCollection, error) {
	var fc geoFeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parsing GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("FeatureCollection has no features")
	}

	ids := make([]string, 0, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Properties.ID == "" {
			return nil, fmt.Errorf("feature %d has no properties.id", i)
		}
		ids = append(ids, feature.Properties.ID)
	}

	return &AreaCollection{Raw: raw, IDs: ids}, nil
}
