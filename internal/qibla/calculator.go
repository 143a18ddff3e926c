package qibla

import (
	"context"
	"log/slog"

	"qibla.arahkiblat.org/internal/logging"
	"qibla.arahkiblat.org/internal/metrics"
	"qibla.arahkiblat.org/internal/models"
	"qibla.arahkiblat.org/internal/utils"
)

// Operation labels for the calculations counter.
const (
	OpReport    = "report"
	OpBearing   = "bearing"
	OpCardinal  = "cardinal"
	OpToDMS     = "to_dms"
	OpToDecimal = "to_decimal"
	OpDeviation = "deviation"
	OpFacade    = "facade_bearing"
)

// Calculator wraps the engine with debug logging and calculation counters.
// Both logger and metrics may be nil.
type Calculator struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCalculator(logger *slog.Logger, m *metrics.Metrics) *Calculator {
	return &Calculator{logger: logger, metrics: m}
}

// Report computes the full qibla report.
func (c *Calculator) Report(ctx context.Context, in Input) models.QiblaReport {
	report := Calculate(in)
	c.metrics.CountCalculation(OpReport)
	c.debug(ctx, "qibla report calculated",
		slog.Float64("lat", in.Location.Lat),
		slog.Float64("lon", in.Location.Lon),
		slog.Float64("qibla_bearing", report.QiblaBearing.Degrees),
		slog.Float64("deviation", report.Deviation.Degrees))
	return report
}

// Bearing computes the initial bearing between two points.
func (c *Calculator) Bearing(ctx context.Context, from, to models.GeoPoint) models.BearingBetweenEntry {
	bearing := utils.BearingBetweenPoints(from, to)
	c.metrics.CountCalculation(OpBearing)
	c.debug(ctx, "bearing calculated", slog.Float64("bearing", bearing))
	return models.BearingBetweenEntry{
		From:    from,
		To:      to,
		Bearing: utils.NewBearingEntry(bearing),
	}
}

// Cardinal classifies a bearing into its compass octant.
func (c *Calculator) Cardinal(ctx context.Context, bearing float64) models.BearingEntry {
	c.metrics.CountCalculation(OpCardinal)
	return utils.NewBearingEntry(bearing)
}

// ToDMS converts a decimal angle, optionally carrying 60 seconds into the next minute.
func (c *Calculator) ToDMS(ctx context.Context, value float64, carry bool) models.DecimalEntry {
	c.metrics.CountCalculation(OpToDMS)

	dms := utils.DecimalToDMS(value)
	if carry {
		dms = utils.DecimalToDMSCarried(value)
	}
	return models.DecimalEntry{Decimal: value, DMS: dms, Text: dms.String()}
}

// ToDecimal converts a DMS angle to decimal degrees.
func (c *Calculator) ToDecimal(ctx context.Context, dms models.DMSAngle) models.DecimalEntry {
	c.metrics.CountCalculation(OpToDecimal)
	return models.DecimalEntry{Decimal: utils.DMSAngleToDecimal(dms), DMS: dms, Text: dms.String()}
}

// Deviation compares a target bearing with a measured one.
func (c *Calculator) Deviation(ctx context.Context, target, measured float64) models.DeviationEntry {
	c.metrics.CountCalculation(OpDeviation)
	entry := utils.NewDeviationEntry(utils.Deviation(target, measured))
	c.debug(ctx, "deviation calculated",
		slog.Float64("target", target),
		slog.Float64("measured", measured),
		slog.Float64("deviation", entry.Degrees))
	return entry
}

// FacadeBearing records a completed two-point facade measurement.
func (c *Calculator) FacadeBearing(ctx context.Context, bearing float64) {
	c.metrics.CountCalculation(OpFacade)
	c.debug(ctx, "facade bearing derived", slog.Float64("bearing", bearing))
}

func (c *Calculator) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger := c.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
