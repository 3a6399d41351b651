// internal/api/v1/analytics.go
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"birdcount-go/internal/survey"
)

// StatsResponse wraps the per-month summary rows for one filter selection
type StatsResponse struct {
	Species   string           `json:"species"`
	StartYear int              `json:"start_year,omitempty"`
	EndYear   int              `json:"end_year,omitempty"`
	Summary   []survey.Summary `json:"summary"`
}

// BandResponse wraps the confidence band polygon for one filter selection
type BandResponse struct {
	Species   string             `json:"species"`
	StartYear int                `json:"start_year,omitempty"`
	EndYear   int                `json:"end_year,omitempty"`
	Band      survey.BandPolygon `json:"band"`
}

// TimeSeriesResponse wraps the per-year line chart series
type TimeSeriesResponse struct {
	Species   string              `json:"species"`
	StartYear int                 `json:"start_year,omitempty"`
	EndYear   int                 `json:"end_year,omitempty"`
	Series    []survey.YearSeries `json:"series"`
}

// GetSpecies handles GET /api/v1/species
// Returns the sorted unique species names for the dropdown.
func (c *Controller) GetSpecies(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.DS.Species())
}

// GetYears handles GET /api/v1/years
// Returns the inclusive year bounds of the site-wide aggregate series.
func (c *Controller) GetYears(ctx echo.Context) error {
	minYear, maxYear := c.DS.YearRange()
	return ctx.JSON(http.StatusOK, map[string]int{
		"min_year": minYear,
		"max_year": maxYear,
	})
}

// GetStats handles GET /api/v1/stats
// Returns the per-month descriptive statistics for a species and optional
// year range. An unknown species yields an empty summary, not an error.
func (c *Controller) GetStats(ctx echo.Context) error {
	filter, err := parseFilter(ctx)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("stats:%s:%d:%d", filter.Species, filter.StartYear, filter.EndYear)
	if cached, found := c.cacheGet("stats", cacheKey); found {
		return ctx.JSON(http.StatusOK, cached)
	}

	start := time.Now()
	summary := survey.ComputeStats(c.DS.Records(), filter, c.statsOptions)
	c.recordComputation("stats", start, len(summary))

	response := StatsResponse{
		Species:   filter.Species,
		StartYear: filter.StartYear,
		EndYear:   filter.EndYear,
		Summary:   summary,
	}
	c.cacheSet(cacheKey, response)

	return ctx.JSON(http.StatusOK, response)
}

// GetBand handles GET /api/v1/stats/band
// Returns the mean ± standard deviation envelope as a closed polygon for
// the shaded overlay.
func (c *Controller) GetBand(ctx echo.Context) error {
	filter, err := parseFilter(ctx)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("band:%s:%d:%d", filter.Species, filter.StartYear, filter.EndYear)
	if cached, found := c.cacheGet("band", cacheKey); found {
		return ctx.JSON(http.StatusOK, cached)
	}

	start := time.Now()
	summary := survey.ComputeStats(c.DS.Records(), filter, c.statsOptions)
	band := survey.ComputeBand(summary)
	c.recordComputation("band", start, band.Len())

	response := BandResponse{
		Species:   filter.Species,
		StartYear: filter.StartYear,
		EndYear:   filter.EndYear,
		Band:      band,
	}
	c.cacheSet(cacheKey, response)

	return ctx.JSON(http.StatusOK, response)
}

// GetTimeSeries handles GET /api/v1/timeseries
// Returns the raw site-wide counts grouped into one series per year for the
// line chart.
func (c *Controller) GetTimeSeries(ctx echo.Context) error {
	filter, err := parseFilter(ctx)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("timeseries:%s:%d:%d", filter.Species, filter.StartYear, filter.EndYear)
	if cached, found := c.cacheGet("timeseries", cacheKey); found {
		return ctx.JSON(http.StatusOK, cached)
	}

	start := time.Now()
	series := survey.SelectTimeSeries(c.DS.Records(), filter)
	c.recordComputation("timeseries", start, len(series))

	response := TimeSeriesResponse{
		Species:   filter.Species,
		StartYear: filter.StartYear,
		EndYear:   filter.EndYear,
		Series:    series,
	}
	c.cacheSet(cacheKey, response)

	return ctx.JSON(http.StatusOK, response)
}

// parseFilter extracts and validates the species and year range query
// parameters shared by the analytics endpoints.
func parseFilter(ctx echo.Context) (survey.Filter, error) {
	filter := survey.Filter{Species: ctx.QueryParam("species")}
	if filter.Species == "" {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "Missing required parameter: species")
	}

	var err error
	filter.StartYear, err = parseYearParam(ctx, "start_year")
	if err != nil {
		return filter, err
	}
	filter.EndYear, err = parseYearParam(ctx, "end_year")
	if err != nil {
		return filter, err
	}

	if filter.StartYear != 0 && filter.EndYear != 0 && filter.StartYear > filter.EndYear {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "`start_year` cannot be after `end_year`")
	}

	return filter, nil
}

func parseYearParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter. Must be a positive integer.", name))
	}
	return year, nil
}

// cacheGet looks up a cached derived view and records the cache outcome.
func (c *Controller) cacheGet(operation, key string) (any, bool) {
	cached, found := c.viewCache.Get(key)
	if c.metrics != nil {
		if found {
			c.metrics.Survey.RecordCacheHit(operation)
		} else {
			c.metrics.Survey.RecordCacheMiss(operation)
		}
	}
	return cached, found
}

func (c *Controller) cacheSet(key string, response any) {
	c.viewCache.SetDefault(key, response)
}

func (c *Controller) recordComputation(operation string, start time.Time, rows int) {
	if c.metrics != nil {
		c.metrics.Survey.RecordComputation(operation, time.Since(start).Seconds(), rows)
	}
}
