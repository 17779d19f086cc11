// Package service composes the geolocation core with the weather and
// event providers into the operations the HTTP layer exposes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/galraemalrae/weathertravel/internal/adapter/tourapi"
	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/geo"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

// WeatherProvider supplies current conditions and a daily forecast for a
// coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error)
	Forecast(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error)
}

// EventProvider supplies festival listings and per-event details.
type EventProvider interface {
	SearchFestivals(ctx context.Context) ([]domain.EventRecord, error)
	EventDetail(ctx context.Context, contentID string) (domain.EventRecord, error)
}

// Service is the application core behind the HTTP handlers.
type Service struct {
	weather WeatherProvider
	events  EventProvider
	logger  *slog.Logger
	metrics *observability.Metrics
}

func New(weather WeatherProvider, events EventProvider, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		weather: weather,
		events:  events,
		logger:  logger,
		metrics: metrics,
	}
}

// ResolveLocation finds the gazetteer place nearest to the coordinate.
func (s *Service) ResolveLocation(lat, lon float64) (geo.ResolvedLocation, error) {
	s.metrics.ResolveRequests.Inc()
	resolved, err := geo.Resolve(lat, lon)
	if err != nil {
		s.metrics.ResolveErrors.Inc()
		return geo.ResolvedLocation{}, err
	}
	s.logger.Debug("location resolved",
		"lat", lat, "lon", lon,
		"place", resolved.Place.Name, "region", resolved.Place.Region,
		"distance_km", resolved.DistanceKm)
	return resolved, nil
}

// CurrentWeather validates the coordinate and fetches current
// conditions from the provider.
func (s *Service) CurrentWeather(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	if _, err := geo.Resolve(lat, lon); err != nil {
		return domain.CurrentWeather{}, err
	}
	return s.weather.Current(ctx, lat, lon)
}

// ForecastWeather validates the coordinate and fetches the daily
// forecast from the provider.
func (s *Service) ForecastWeather(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error) {
	if _, err := geo.Resolve(lat, lon); err != nil {
		return nil, err
	}
	return s.weather.Forecast(ctx, lat, lon)
}

// RegionWeather is the combined weather view for one region's
// representative coordinate.
type RegionWeather struct {
	Region     geo.Region             `json:"region"`
	Name       string                 `json:"name"`
	Coordinate geo.Coordinate         `json:"coordinate"`
	Current    domain.CurrentWeather  `json:"current"`
	Forecast   []domain.ForecastEntry `json:"forecast"`
}

// RegionWeather fetches current conditions and forecast for a region's
// representative coordinate. The two provider calls run concurrently.
func (s *Service) RegionWeather(ctx context.Context, region geo.Region) (RegionWeather, error) {
	coord, err := geo.RepresentativeCoordinate(region)
	if err != nil {
		return RegionWeather{}, err
	}

	type currentResult struct {
		weather domain.CurrentWeather
		err     error
	}
	currentCh := make(chan currentResult, 1)
	go func() {
		w, err := s.weather.Current(ctx, coord.Lat, coord.Lon)
		currentCh <- currentResult{weather: w, err: err}
	}()

	forecast, forecastErr := s.weather.Forecast(ctx, coord.Lat, coord.Lon)
	current := <-currentCh

	if current.err != nil {
		return RegionWeather{}, fmt.Errorf("current weather for %s: %w", region, current.err)
	}
	if forecastErr != nil {
		return RegionWeather{}, fmt.Errorf("forecast for %s: %w", region, forecastErr)
	}

	return RegionWeather{
		Region:     region,
		Name:       geo.DisplayName(region),
		Coordinate: coord,
		Current:    current.weather,
		Forecast:   forecast,
	}, nil
}

// RegionEvents fetches the nationwide festival list and keeps the events
// whose address classifies into the region. An empty list is a valid
// result.
func (s *Service) RegionEvents(ctx context.Context, region geo.Region) ([]domain.EventRecord, error) {
	if _, err := geo.RepresentativeCoordinate(region); err != nil {
		return nil, err
	}

	all, err := s.events.SearchFestivals(ctx)
	if err != nil {
		return nil, fmt.Errorf("festival search: %w", err)
	}

	matched := domain.FilterByRegion(all, region)
	s.logger.Debug("events filtered", "region", region, "total", len(all), "matched", len(matched))
	return matched, nil
}

// EventDetail fetches one event's full detail from the provider.
func (s *Service) EventDetail(ctx context.Context, contentID string) (domain.EventRecord, error) {
	return s.events.EventDetail(ctx, contentID)
}

// RegionSummary is one entry of the region index.
type RegionSummary struct {
	Slug       string         `json:"slug"`
	Name       string         `json:"name"`
	AreaCode   string         `json:"areaCode,omitempty"`
	Coordinate geo.Coordinate `json:"coordinate"`
}

// Regions lists every administrative region with its display name, open-
// data area code, and representative coordinate.
func (s *Service) Regions() []RegionSummary {
	regions := geo.Regions()
	out := make([]RegionSummary, 0, len(regions))
	for _, r := range regions {
		coord, err := geo.RepresentativeCoordinate(r)
		if err != nil {
			// Startup validation guarantees a representative per region.
			continue
		}
		code, _ := tourapi.AreaCode(r)
		out = append(out, RegionSummary{
			Slug:       string(r),
			Name:       geo.DisplayName(r),
			AreaCode:   code,
			Coordinate: coord,
		})
	}
	return out
}
