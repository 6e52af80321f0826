// SPDX-License-Identifier: MIT

// Package metrics exposes the outcome of a solve as Prometheus metrics,
// written in the node exporter textfile format.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrix"
	"github.com/katalvlaran/seidel/pivot"
	"github.com/katalvlaran/seidel/seidel"
)

const KindLabel = "kind"

// Recorder owns a private registry so several solves in one process (tests,
// for one) never collide on the default registry.
type Recorder struct {
	reg *prometheus.Registry

	iterations  prometheus.Gauge
	converged   prometheus.Gauge
	dominant    prometheus.Gauge
	maxError    prometheus.Gauge
	residual    prometheus.Gauge
	systemSize  prometheus.Gauge
	duration    prometheus.Gauge
	swaps       *prometheus.GaugeVec
	sweepsTotal prometheus.Counter
}

// NewRecorder creates and registers every metric.
func NewRecorder() *Recorder {
	r := &Recorder{
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_iterations",
			Help: "Gauss-Seidel sweeps performed by the last solve",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_converged",
			Help: "1 if the last solve met its tolerance, 0 otherwise",
		}),
		dominant: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_diagonally_dominant",
			Help: "1 if pivoting made the system strictly diagonally dominant",
		}),
		maxError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_max_error",
			Help: "Largest per-variable change in the final sweep",
		}),
		residual: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_residual_inf_norm",
			Help: "Infinity norm of A·x - b for the returned solution",
		}),
		systemSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_system_size",
			Help: "Number of equations in the last solved system",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seidel_solve_duration_seconds",
			Help: "Wall time of the last rearrange and solve",
		}),
		swaps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seidel_swaps",
			Help: "Swaps made by pivoting, by kind",
		}, []string{KindLabel}),
		sweepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seidel_sweeps_total",
			Help: "Monotonic count of sweeps observed",
		}),
	}
	r.reg = prometheus.NewRegistry()
	r.reg.MustRegister(
		r.iterations,
		r.converged,
		r.dominant,
		r.maxError,
		r.residual,
		r.systemSize,
		r.duration,
		r.swaps,
		r.sweepsTotal,
	)

	return r
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSweep matches seidel.Options.Observer; pass it with
// seidel.WithObserver(r.ObserveSweep).
func (r *Recorder) ObserveSweep(_ int, _ []float64) {
	r.sweepsTotal.Inc()
}

// Observe records the outcome of one rearrange and solve of sys.
// The residual is computed against sys in its current (pivoted) form,
// which yields the same norm as the original system.
func (r *Recorder) Observe(sys *linsys.System, rep pivot.Report, res seidel.Result, took time.Duration) error {
	r.systemSize.Set(float64(sys.Size()))
	r.dominant.Set(boolValue(rep.Dominant))
	r.swaps.WithLabelValues(pivot.RowSwap.String()).Set(float64(rep.Count(pivot.RowSwap)))
	r.swaps.WithLabelValues(pivot.ColumnSwap.String()).Set(float64(rep.Count(pivot.ColumnSwap)))
	r.iterations.Set(float64(res.Iterations))
	r.converged.Set(boolValue(res.Converged))
	r.maxError.Set(matrix.VecInfNorm(res.LastErrors))
	r.duration.Set(took.Seconds())

	resid, err := sys.Residual(res.Solution)
	if err != nil {
		return errors.Wrap(err, "computing residual")
	}
	r.residual.Set(matrix.VecInfNorm(resid))

	return nil
}

// WriteTextfile writes every metric to path in the textfile collector format.
func (r *Recorder) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, r.reg), "writing metrics to %s", path)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
