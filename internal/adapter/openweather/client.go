// Package openweather adapts the OpenWeather REST API to the domain
// weather types: current conditions and a 5-day daily forecast, with
// descriptions translated to Korean.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

// kst renders forecast dates in Korean local time regardless of where
// the service runs.
var kst = time.FixedZone("KST", 9*60*60)

var koWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// Client calls the OpenWeather data API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an OpenWeather client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://api.openweathermap.org/data/2.5",
		logger:     logger,
		metrics:    metrics,
	}
}

// Current fetches present conditions for a coordinate.
func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	var resp currentResponse
	if err := c.doRequest(ctx, "/weather", lat, lon, "current", &resp); err != nil {
		return domain.CurrentWeather{}, err
	}
	if len(resp.Weather) == 0 {
		return domain.CurrentWeather{}, fmt.Errorf("openweather: empty weather array for (%.4f, %.4f)", lat, lon)
	}

	return domain.CurrentWeather{
		Location:    resp.Name,
		Temperature: roundInt(resp.Main.Temp),
		FeelsLike:   roundInt(resp.Main.FeelsLike),
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		Description: TranslateDescription(resp.Weather[0].Description),
		Icon:        resp.Weather[0].Icon,
	}, nil
}

// Forecast fetches the 5-day forecast for a coordinate. The provider
// returns 3-hour slots; one slot per day is kept (every 8th entry),
// matching the original daily view.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error) {
	var resp forecastResponse
	if err := c.doRequest(ctx, "/forecast", lat, lon, "forecast", &resp); err != nil {
		return nil, err
	}

	out := make([]domain.ForecastEntry, 0, 5)
	for i, item := range resp.List {
		if i%8 != 0 {
			continue
		}
		if len(item.Weather) == 0 {
			continue
		}
		day := time.Unix(item.Dt, 0).In(kst)
		out = append(out, domain.ForecastEntry{
			Date:        fmt.Sprintf("%d월 %d일 (%s)", int(day.Month()), day.Day(), koWeekdays[day.Weekday()]),
			TempMin:     roundInt(item.Main.TempMin),
			TempMax:     roundInt(item.Main.TempMax),
			Description: TranslateDescription(item.Weather[0].Description),
			Icon:        item.Weather[0].Icon,
		})
		if len(out) == 5 {
			break
		}
	}
	return out, nil
}

func (c *Client) doRequest(ctx context.Context, path string, lat, lon float64, operation string, v any) error {
	params := url.Values{
		"lat":   {fmt.Sprintf("%.4f", lat)},
		"lon":   {fmt.Sprintf("%.4f", lon)},
		"appid": {c.apiKey},
		"units": {"metric"},
		"lang":  {"kr"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("openweather", operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("openweather", operation, "error").Inc()
		return fmt.Errorf("%s weather request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.ProviderRequests.WithLabelValues("openweather", operation, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("openweather", operation, "error").Inc()
		return fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues("openweather", operation, "success").Inc()
	return nil
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// OpenWeather API response types.

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []weatherEntry `json:"weather"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []weatherEntry `json:"weather"`
	} `json:"list"`
}

type weatherEntry struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
