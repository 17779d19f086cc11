package openweather

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/galraemalrae/weathertravel/internal/cache"
	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

// CachedClient wraps a weather client with LRU+TTL response caches. The
// TTL keeps region pages from hammering the provider while staying fresh
// enough for weather.
type CachedClient struct {
	inner    WeatherSource
	current  *cache.LRU[domain.CurrentWeather]
	forecast *cache.LRU[[]domain.ForecastEntry]
	metrics  *observability.Metrics
}

// WeatherSource is the provider surface CachedClient decorates.
type WeatherSource interface {
	Current(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error)
	Forecast(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error)
}

// NewCachedClient creates a cache decorator around a weather source.
func NewCachedClient(inner WeatherSource, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedClient {
	return &CachedClient{
		inner:    inner,
		current:  cache.New[domain.CurrentWeather](maxEntries, ttl, clock),
		forecast: cache.New[[]domain.ForecastEntry](maxEntries, ttl, clock),
		metrics:  metrics,
	}
}

func (c *CachedClient) Current(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	key := coordKey(lat, lon)
	if cw, ok := c.current.Get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("openweather", "hit").Inc()
		return cw, nil
	}
	c.metrics.CacheLookups.WithLabelValues("openweather", "miss").Inc()

	cw, err := c.inner.Current(ctx, lat, lon)
	if err != nil {
		return domain.CurrentWeather{}, err
	}
	c.current.Put(key, cw)
	return cw, nil
}

func (c *CachedClient) Forecast(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error) {
	key := coordKey(lat, lon)
	if fc, ok := c.forecast.Get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("openweather", "hit").Inc()
		return fc, nil
	}
	c.metrics.CacheLookups.WithLabelValues("openweather", "miss").Inc()

	fc, err := c.inner.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	// Empty forecasts are not cached so transient provider hiccups can
	// recover on the next request.
	if len(fc) > 0 {
		c.forecast.Put(key, fc)
	}
	return fc, nil
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
