package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DownloadCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wattfrance_download_calls_total",
			Help: "Total data-source download calls",
		},
		[]string{"source", "status"},
	)

	DownloadLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wattfrance_download_latency_seconds",
			Help:    "Data-source download latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ScenarioRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wattfrance_scenario_runs_total",
			Help: "Total scenario computations",
		},
		[]string{"status"},
	)

	BackupEnergyTWh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wattfrance_backup_energy_twh",
			Help: "Backup energy requirement of the last computed scenario",
		},
	)
)
