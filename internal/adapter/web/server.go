// Package web exposes the application over HTTP: the JSON API plus
// health and metrics endpoints.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/geo"
	"github.com/galraemalrae/weathertravel/internal/observability"
	"github.com/galraemalrae/weathertravel/internal/service"
)

// App is the application surface the HTTP handlers call into.
type App interface {
	ResolveLocation(lat, lon float64) (geo.ResolvedLocation, error)
	CurrentWeather(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error)
	ForecastWeather(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error)
	RegionWeather(ctx context.Context, region geo.Region) (service.RegionWeather, error)
	RegionEvents(ctx context.Context, region geo.Region) ([]domain.EventRecord, error)
	EventDetail(ctx context.Context, contentID string) (domain.EventRecord, error)
	Regions() []service.RegionSummary
}

// Server serves the JSON API.
type Server struct {
	httpServer    *http.Server
	app           App
	defaultRegion geo.Region
	logger        *slog.Logger
}

// NewServer wires the routes. defaultRegion is used when /api/events is
// called without an explicit region.
func NewServer(addr string, app App, defaultRegion geo.Region, logger *slog.Logger, metrics *observability.Metrics) *Server {
	router := mux.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		app:           app,
		defaultRegion: defaultRegion,
		logger:        logger,
	}

	router.Use(requestMiddleware(logger, metrics))

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/location", s.handleLocation).Methods(http.MethodGet)
	api.HandleFunc("/weather", s.handleWeather).Methods(http.MethodGet)
	api.HandleFunc("/regions", s.handleRegions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{region}", s.handleRegionWeather).Methods(http.MethodGet)
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", s.handleEventDetail).Methods(http.MethodGet)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinateParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resolved, err := s.app.ResolveLocation(lat, lon)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"place":       resolved.Place,
		"displayName": geo.HierarchicalName(resolved.Place.Name),
		"region":      resolved.Place.Region,
		"regionName":  geo.DisplayName(resolved.Place.Region),
		"distanceKm":  resolved.DistanceKm,
	})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinateParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch kind := r.URL.Query().Get("type"); kind {
	case "", "current":
		current, err := s.app.CurrentWeather(r.Context(), lat, lon)
		if err != nil {
			s.writeMappedError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, current)
	case "forecast":
		forecast, err := s.app.ForecastWeather(r.Context(), lat, lon)
		if err != nil {
			s.writeMappedError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"forecast": forecast})
	default:
		writeError(w, http.StatusBadRequest, errors.New("type must be current or forecast"))
	}
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"regions": s.app.Regions()})
}

func (s *Server) handleRegionWeather(w http.ResponseWriter, r *http.Request) {
	region, err := geo.ParseRegion(mux.Vars(r)["region"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	view, err := s.app.RegionWeather(r.Context(), region)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	region := s.defaultRegion
	if slug := r.URL.Query().Get("region"); slug != "" {
		parsed, err := geo.ParseRegion(slug)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		region = parsed
	}

	events, err := s.app.RegionEvents(r.Context(), region)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.EventRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"region":     region,
		"regionName": geo.DisplayName(region),
		"events":     events,
	})
}

func (s *Server) handleEventDetail(w http.ResponseWriter, r *http.Request) {
	contentID := mux.Vars(r)["id"]

	event, err := s.app.EventDetail(r.Context(), contentID)
	if err != nil {
		s.writeMappedError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// writeMappedError maps domain errors to status codes: invalid input is
// the caller's fault, unknown regions are not found, and anything else
// is an upstream failure surfaced as 502 without retry.
func (s *Server) writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinate):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, geo.ErrUnknownRegion):
		writeError(w, http.StatusNotFound, err)
	default:
		s.logger.Error("upstream request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadGateway, err)
	}
}

func coordinateParams(r *http.Request) (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return 0, 0, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return 0, 0, errors.New("lon must be a number")
	}
	return lat, lon, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
