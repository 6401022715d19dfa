package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"
)

// Metrics holds the game's Prometheus collectors.
// A nil *Metrics records nothing.
type Metrics struct {
	Steps       prometheus.Counter
	TickEvents  prometheus.Counter
	EnemyMoves  prometheus.Counter
	Transitions *prometheus.CounterVec
	Mode        *prometheus.GaugeVec
}

// NewMetrics creates and registers the game metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overworld_steps_total",
			Help: "Total number of completed simulation steps",
		}),
		TickEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overworld_tick_events_total",
			Help: "Total number of tick events emitted by player moves",
		}),
		EnemyMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overworld_enemy_moves_total",
			Help: "Total number of single-cell enemy moves",
		}),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overworld_mode_transitions_total",
				Help: "Total number of mode transitions by source and target mode",
			},
			[]string{"from", "to"},
		),
		Mode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "overworld_mode",
				Help: "1 for the current game mode, 0 otherwise",
			},
			[]string{"mode"},
		),
	}

	reg.MustRegister(m.Steps, m.TickEvents, m.EnemyMoves, m.Transitions, m.Mode)
	return m
}

// RecordStep counts one completed step and the moves made during it.
func (m *Metrics) RecordStep(ticks, enemyMoves int) {
	if m == nil {
		return
	}
	m.Steps.Inc()
	m.TickEvents.Add(float64(ticks))
	m.EnemyMoves.Add(float64(enemyMoves))
}

// RecordTransition counts a mode change and updates the mode gauge.
func (m *Metrics) RecordTransition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
	m.Mode.WithLabelValues(from).Set(0)
	m.Mode.WithLabelValues(to).Set(1)
}

// SetMode marks mode as current without counting a transition.
func (m *Metrics) SetMode(mode string) {
	if m == nil {
		return
	}
	m.Mode.WithLabelValues(mode).Set(1)
}

// MetricsServer serves /metrics for a registry.
type MetricsServer struct {
	listener   net.Listener
	httpServer *http.Server
}

// StartMetricsServer listens on addr and serves the registry in the background.
func StartMetricsServer(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (*MetricsServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, oops.Code("METRICS_LISTEN_FAILED").With("addr", addr).Wrap(err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	s := &MetricsServer{
		listener: listener,
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *MetricsServer) Addr() string {
	return s.listener.Addr().String()
}

// Stop shuts the server down.
func (s *MetricsServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
