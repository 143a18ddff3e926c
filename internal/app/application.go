package app

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"qibla.arahkiblat.org/internal/appconf"
	"qibla.arahkiblat.org/internal/metrics"
	"qibla.arahkiblat.org/internal/orientation"
	"qibla.arahkiblat.org/internal/qibla"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Calculator *qibla.Calculator
	Sessions   *orientation.Store
	Clock      clockwork.Clock
}

// New wires an Application from its configuration. Each Application gets its own
// metrics registry. A nil clock means the real clock.
func New(cfg appconf.Config, logger *slog.Logger, clock clockwork.Clock) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Registry:   reg,
		Metrics:    m,
		Calculator: qibla.NewCalculator(logger, m),
		Sessions:   orientation.NewStore(cfg.SessionTTL, clock),
		Clock:      clock,
	}
}
