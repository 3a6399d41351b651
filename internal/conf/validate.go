// conf/validate.go

package conf

import (
	"fmt"
	"strconv"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateDatasetSettings(&settings.Dataset); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateWebServerSettings(&settings.WebServer); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateMapSettings(&settings.Map); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateDatasetSettings(dataset *DatasetSettings) error {
	if dataset.CSVPath == "" {
		return fmt.Errorf("dataset CSV path must not be empty")
	}
	if dataset.GeoJSONPath == "" {
		return fmt.Errorf("dataset GeoJSON path must not be empty")
	}
	return nil
}

func validateWebServerSettings(ws *WebServerSettings) error {
	if !ws.Enabled {
		return nil
	}
	port, err := strconv.Atoi(ws.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid web server port: %s", ws.Port)
	}
	return nil
}

func validateMapSettings(m *MapSettings) error {
	if m.Center.Latitude < -90 || m.Center.Latitude > 90 {
		return fmt.Errorf("map center latitude must be between -90 and 90: %f", m.Center.Latitude)
	}
	if m.Center.Longitude < -180 || m.Center.Longitude > 180 {
		return fmt.Errorf("map center longitude must be between -180 and 180: %f", m.Center.Longitude)
	}
	if m.Zoom < 0 || m.Zoom > 22 {
		return fmt.Errorf("map zoom must be between 0 and 22: %f", m.Zoom)
	}
	return nil
}
