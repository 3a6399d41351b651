// internal/api/v1/mapdata.go
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"birdcount-go/internal/survey"
)

// MapFramesResponse holds the animated choropleth frames for one species
type MapFramesResponse struct {
	Species  string            `json:"species"`
	MaxCount int               `json:"max_count"` // fixes the color scale over the whole animation
	Frames   []survey.MapFrame `json:"frames"`
}

// MapConfig is the client-side map viewport and credential configuration
type MapConfig struct {
	Center struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"center"`
	Zoom  float64 `json:"zoom"`
	Style string  `json:"style"`
	Token string  `json:"token,omitempty"`
}

// GetMapFrames handles GET /api/v1/map/frames
// Returns one frame of raw per-area counts per survey date for the animated
// choropleth. A species with no sub-area records yields an empty frame list.
func (c *Controller) GetMapFrames(ctx echo.Context) error {
	species := ctx.QueryParam("species")
	if species == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required parameter: species")
	}

	cacheKey := fmt.Sprintf("frames:%s", species)
	if cached, found := c.cacheGet("map_frames", cacheKey); found {
		return ctx.JSON(http.StatusOK, cached)
	}

	start := time.Now()
	frames := survey.SelectMapFrames(c.DS.Records(), species)
	c.recordComputation("map_frames", start, len(frames))

	response := MapFramesResponse{
		Species:  species,
		MaxCount: survey.MaxCount(frames),
		Frames:   frames,
	}
	c.cacheSet(cacheKey, response)

	return ctx.JSON(http.StatusOK, response)
}

// GetMapAreas handles GET /api/v1/map/areas
// Serves the survey area GeoJSON document as loaded.
func (c *Controller) GetMapAreas(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, c.DS.Areas().Raw)
}

// GetMapConfig handles GET /api/v1/map/config
// Returns the viewport defaults and the map access token. The token is an
// opaque credential for the map tile provider; without it the client falls
// back to an uncolored map.
func (c *Controller) GetMapConfig(ctx echo.Context) error {
	cfg := MapConfig{
		Zoom:  c.Settings.Map.Zoom,
		Style: c.Settings.Map.Style,
		Token: c.Settings.MapboxToken(),
	}
	cfg.Center.Latitude = c.Settings.Map.Center.Latitude
	cfg.Center.Longitude = c.Settings.Map.Center.Longitude

	return ctx.JSON(http.StatusOK, cfg)
}
