package openweather

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

const testAPIKey = "test-key"

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:    observability.NewMetricsForTesting(),
	}
}

func TestClient_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "kr", r.URL.Query().Get("lang"))
		assert.Equal(t, "37.5665", r.URL.Query().Get("lat"))

		body := map[string]any{
			"name": "Seoul",
			"main": map[string]any{"temp": 21.6, "feels_like": 20.4, "humidity": 58},
			"wind": map[string]any{"speed": 2.5},
			"weather": []map[string]any{
				{"description": "clear sky", "icon": "01d"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	cw, err := c.Current(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)

	assert.Equal(t, "Seoul", cw.Location)
	assert.Equal(t, 22, cw.Temperature)
	assert.Equal(t, 20, cw.FeelsLike)
	assert.Equal(t, 58, cw.Humidity)
	assert.Equal(t, 2.5, cw.WindSpeed)
	assert.Equal(t, "맑음", cw.Description)
	assert.Equal(t, "01d", cw.Icon)
}

func TestClient_Current_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"cod":401}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Current(context.Background(), 37.5, 127.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClient_Forecast_PicksDailySlots(t *testing.T) {
	// 40 three-hour slots; every 8th starting at index 0 is a new day.
	list := make([]map[string]any, 40)
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, kst) // a Monday
	for i := range list {
		list[i] = map[string]any{
			"dt":   base.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			"main": map[string]any{"temp_min": float64(i), "temp_max": float64(i + 5)},
			"weather": []map[string]any{
				{"description": "light rain", "icon": "10d"},
			},
		}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"list": list}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	fc, err := c.Forecast(context.Background(), 37.5, 127.0)
	require.NoError(t, err)

	require.Len(t, fc, 5)
	assert.Equal(t, "3월 2일 (월)", fc[0].Date)
	assert.Equal(t, "3월 3일 (화)", fc[1].Date)
	assert.Equal(t, 0, fc[0].TempMin)
	assert.Equal(t, 5, fc[0].TempMax)
	assert.Equal(t, "가벼운 비", fc[0].Description)
	assert.Equal(t, 8, fc[1].TempMin, "second day is the slot at index 8")
}

func TestTranslateDescription(t *testing.T) {
	assert.Equal(t, "맑음", TranslateDescription("clear sky"))
	assert.Equal(t, "흐림", TranslateDescription("튼구름"))
	assert.Equal(t, "구름 조금", TranslateDescription("약간의 구름이 낀 하늘"))
	// Unknown descriptions pass through unchanged.
	assert.Equal(t, "모래폭풍", TranslateDescription("모래폭풍"))
}

// --- cached client ---

type countingSource struct {
	currentCalls  int
	forecastCalls int
}

func (s *countingSource) Current(_ context.Context, _, _ float64) (domain.CurrentWeather, error) {
	s.currentCalls++
	return domain.CurrentWeather{Location: "Seoul", Temperature: 20}, nil
}

func (s *countingSource) Forecast(_ context.Context, _, _ float64) ([]domain.ForecastEntry, error) {
	s.forecastCalls++
	return []domain.ForecastEntry{{Date: "3월 2일 (월)"}}, nil
}

func TestCachedClient_CurrentHit(t *testing.T) {
	src := &countingSource{}
	cached := NewCachedClient(src, 10, time.Minute, clockwork.NewFakeClock(), observability.NewMetricsForTesting())

	_, err := cached.Current(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)
	_, err = cached.Current(context.Background(), 37.5665, 126.9780)
	require.NoError(t, err)

	assert.Equal(t, 1, src.currentCalls, "second call should hit the cache")
}

func TestCachedClient_TTLExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	src := &countingSource{}
	cached := NewCachedClient(src, 10, time.Minute, clock, observability.NewMetricsForTesting())

	_, _ = cached.Forecast(context.Background(), 37.5, 127.0)
	clock.Advance(2 * time.Minute)
	_, _ = cached.Forecast(context.Background(), 37.5, 127.0)

	assert.Equal(t, 2, src.forecastCalls, "expired entry should refetch")
}

func TestCachedClient_DifferentCoordinatesMiss(t *testing.T) {
	src := &countingSource{}
	cached := NewCachedClient(src, 10, time.Minute, clockwork.NewFakeClock(), observability.NewMetricsForTesting())

	_, _ = cached.Current(context.Background(), 37.5665, 126.9780)
	_, _ = cached.Current(context.Background(), 35.1796, 129.0756)

	assert.Equal(t, 2, src.currentCalls)
}
