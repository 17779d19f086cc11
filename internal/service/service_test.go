package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/geo"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

type stubWeather struct {
	current      domain.CurrentWeather
	forecast     []domain.ForecastEntry
	currentErr   error
	forecastErr  error
	currentCalls atomic.Int64
}

func (s *stubWeather) Current(_ context.Context, _, _ float64) (domain.CurrentWeather, error) {
	s.currentCalls.Add(1)
	return s.current, s.currentErr
}

func (s *stubWeather) Forecast(_ context.Context, _, _ float64) ([]domain.ForecastEntry, error) {
	return s.forecast, s.forecastErr
}

type stubEvents struct {
	list    []domain.EventRecord
	detail  domain.EventRecord
	listErr error
}

func (s *stubEvents) SearchFestivals(_ context.Context) ([]domain.EventRecord, error) {
	return s.list, s.listErr
}

func (s *stubEvents) EventDetail(_ context.Context, contentID string) (domain.EventRecord, error) {
	return s.detail, nil
}

func newTestService(weather WeatherProvider, events EventProvider) *Service {
	return New(weather, events, observability.NewTestLogger(), observability.NewMetricsForTesting())
}

func TestResolveLocation(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	resolved, err := svc.ResolveLocation(37.5665, 126.9780)
	require.NoError(t, err)
	assert.Equal(t, geo.Seoul, resolved.Place.Region)
}

func TestResolveLocation_InvalidCoordinate(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	_, err := svc.ResolveLocation(91, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestCurrentWeather_RejectsInvalidCoordinate(t *testing.T) {
	weather := &stubWeather{}
	svc := newTestService(weather, &stubEvents{})

	_, err := svc.CurrentWeather(context.Background(), 37.5, 200)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	assert.Zero(t, weather.currentCalls.Load(), "provider must not be called for invalid input")
}

func TestRegionWeather(t *testing.T) {
	weather := &stubWeather{
		current: domain.CurrentWeather{Temperature: 18, Description: "맑음"},
		forecast: []domain.ForecastEntry{
			{Date: "3월 2일 (월)", TempMin: 5, TempMax: 14},
		},
	}
	svc := newTestService(weather, &stubEvents{})

	view, err := svc.RegionWeather(context.Background(), geo.Busan)
	require.NoError(t, err)

	assert.Equal(t, geo.Busan, view.Region)
	assert.Equal(t, "부산광역시", view.Name)
	assert.Equal(t, 18, view.Current.Temperature)
	require.Len(t, view.Forecast, 1)

	// The representative coordinate must round-trip through the resolver.
	resolved, err := geo.Resolve(view.Coordinate.Lat, view.Coordinate.Lon)
	require.NoError(t, err)
	assert.Equal(t, geo.Busan, resolved.Place.Region)
}

func TestRegionWeather_UnknownRegion(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	_, err := svc.RegionWeather(context.Background(), geo.Region("atlantis"))
	assert.ErrorIs(t, err, geo.ErrUnknownRegion)
}

func TestRegionWeather_ProviderFailure(t *testing.T) {
	weather := &stubWeather{currentErr: errors.New("upstream down")}
	svc := newTestService(weather, &stubEvents{})

	_, err := svc.RegionWeather(context.Background(), geo.Seoul)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestRegionEvents_FiltersByAddress(t *testing.T) {
	events := &stubEvents{list: []domain.EventRecord{
		{Title: "서울 벚꽃 축제", Address: "서울특별시 영등포구 여의도동"},
		{Title: "고성 명태 축제", Address: "강원특별자치도 고성군 거진읍"},
		{Title: "고성 공룡 축제", Address: "경상남도 고성군 하이면"},
	}}
	svc := newTestService(&stubWeather{}, events)

	gangwon, err := svc.RegionEvents(context.Background(), geo.Gangwon)
	require.NoError(t, err)
	require.Len(t, gangwon, 1)
	assert.Equal(t, "고성 명태 축제", gangwon[0].Title)

	gyeongnam, err := svc.RegionEvents(context.Background(), geo.Gyeongnam)
	require.NoError(t, err)
	require.Len(t, gyeongnam, 1)
	assert.Equal(t, "고성 공룡 축제", gyeongnam[0].Title)
}

func TestRegionEvents_EmptyIsNotError(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	matched, err := svc.RegionEvents(context.Background(), geo.Jeju)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestRegionEvents_UnknownRegion(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	_, err := svc.RegionEvents(context.Background(), geo.Region("nowhere"))
	assert.ErrorIs(t, err, geo.ErrUnknownRegion)
}

func TestRegionEvents_ProviderFailure(t *testing.T) {
	events := &stubEvents{listErr: errors.New("quota exceeded")}
	svc := newTestService(&stubWeather{}, events)

	_, err := svc.RegionEvents(context.Background(), geo.Seoul)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRegions(t *testing.T) {
	svc := newTestService(&stubWeather{}, &stubEvents{})

	regions := svc.Regions()
	require.Len(t, regions, 17)

	bySlug := make(map[string]RegionSummary, len(regions))
	for _, r := range regions {
		bySlug[r.Slug] = r
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.AreaCode)
	}
	assert.Equal(t, "서울특별시", bySlug["seoul"].Name)
	assert.Equal(t, "1", bySlug["seoul"].AreaCode)
	assert.Equal(t, "39", bySlug["jeju"].AreaCode)
}
