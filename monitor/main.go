package monitor

import (
	"context"
	"fmt"
	"net/http"

	// import http profilling when the monitoring server is enabled
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Config for the monitoring server
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

var (
	// CommissionsPaidCount counts paid commission ledger rows by schedule and level
	CommissionsPaidCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards",
		Name:      "commissions_paid_total",
		Help:      "Number of commission payouts written to the ledger",
	}, []string{"schedule", "level"})

	// CommissionsSkippedCount counts payouts skipped by the idempotency guard
	CommissionsSkippedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards",
		Name:      "commissions_skipped_total",
		Help:      "Number of duplicate commission payouts skipped",
	}, []string{"schedule", "level"})

	// RepairsCount counts reconciliation repairs by pass
	RepairsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards",
		Name:      "repairs_total",
		Help:      "Number of repairs performed by the reconciliation sweep",
	}, []string{"pass"})

	// RepairErrorsCount counts per item failures collected during sweeps
	RepairErrorsCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rewards",
		Name:      "repair_errors_total",
		Help:      "Number of per item errors collected during reconciliation sweeps",
	})
)

var monitoringServer *http.Server

// LoopProfilingServer starts the metrics and profiling listener when enabled
func LoopProfilingServer(cfg Config) {
	if !cfg.Enabled {
		return
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	http.Handle("/metrics", promhttp.Handler())
	monitoringServer = &http.Server{Addr: addr}
	log.Info().Str("section", "monitor").Str("addr", addr).Msg("Monitoring server started")
	if err := monitoringServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Str("section", "monitor").Msg("Monitoring server stopped unexpectedly")
	}
}

// ShutdownServer stops the monitoring listener if it was started
func ShutdownServer() {
	if monitoringServer == nil {
		return
	}
	if err := monitoringServer.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Str("section", "monitor").Msg("Unable to shutdown monitoring server")
	}
}
