package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvtour/tsp"
)

const metricsNamespace = "lvtour"

// writeMetrics records one solve in a private registry and writes it in
// the node_exporter textfile format to path.
func writeMetrics(path string, n int, res tsp.Result) error {
	reg := prometheus.NewRegistry()
	gauge := func(name, help string, v float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		})
		g.Set(v)
		reg.MustRegister(g)
	}

	gauge("points", "Number of input points.", float64(n))
	gauge("initial_length", "Length of the nearest-neighbour tour.", float64(res.InitialLength))
	gauge("tour_length", "Length of the returned tour.", float64(res.Length))
	gauge("rounds", "Completed local-search rounds.", float64(res.Rounds))
	gauge("sweeps", "2-opt sweeps over all rounds.", float64(res.Sweeps))
	gauge("moves", "Accepted 2-opt moves.", float64(res.Moves))
	gauge("elapsed_seconds", "Wall-clock time spent in the solver.", res.Elapsed.Seconds())

	stop := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "stop_reason",
		Help:      "Why the solver returned (1 for the active reason).",
	}, []string{"reason"})
	stop.WithLabelValues(res.Stop.String()).Set(1)
	reg.MustRegister(stop)

	return prometheus.WriteToTextfile(path, reg)
}
