package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds all the Prometheus metrics for the application. Defining
// them in one place keeps naming and labeling consistent.
type Service struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SnapshotRows    *prometheus.GaugeVec
	SnapshotLoads   prometheus.Counter
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_http_requests_total",
			Help: "The total number of HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "courtside_http_request_duration_seconds",
			Help:    "The duration of HTTP requests, by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		SnapshotRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "courtside_snapshot_rows",
			Help: "The number of rows in the current record-store snapshot, by table.",
		}, []string{"table"}),
		SnapshotLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_snapshot_loads_total",
			Help: "The total number of record-store snapshot loads.",
		}),
	}

	reg.MustRegister(
		s.RequestsTotal,
		s.RequestDuration,
		s.SnapshotRows,
		s.SnapshotLoads,
	)

	return s
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (s *Service) ObserveRequest(method, route string, status int, seconds float64) {
	s.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveSnapshot records a completed snapshot load and its table sizes.
func (s *Service) ObserveSnapshot(playerGames, teamGames, directory int) {
	s.SnapshotLoads.Inc()
	s.SnapshotRows.WithLabelValues("player_games").Set(float64(playerGames))
	s.SnapshotRows.WithLabelValues("team_games").Set(float64(teamGames))
	s.SnapshotRows.WithLabelValues("team_directory").Set(float64(directory))
}
