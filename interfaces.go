package sportysky

import (
	"context"
	"net/http"
)

// Forecaster provides the weather forecast endpoints.
type Forecaster interface {
	// ForecastByLatLng requests the forecast for a GPS position.
	ForecastByLatLng(ctx context.Context, latitude, longitude float64, models ...string) (*http.Response, error)

	// ForecastByCode requests the forecast for a country code.
	ForecastByCode(ctx context.Context, code string, models ...string) (*http.Response, error)
}

// PlaceFinder provides the geographic lookup endpoints.
type PlaceFinder interface {
	// ForecastByBounds looks up places inside a bounding box.
	ForecastByBounds(ctx context.Context, b Bounds, limit int, models ...string) (*http.Response, error)
}

// API combines all endpoints.
type API interface {
	Forecaster
	PlaceFinder
}

// Ensure Client implements all interfaces.
var (
	_ Forecaster  = (*Client)(nil)
	_ PlaceFinder = (*Client)(nil)
	_ API         = (*Client)(nil)
)
