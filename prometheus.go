package muxcodec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by a mux.
//
// An instance can be created only by the [Prometheus] function. The zero
// value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the dispatches counter, labeled by codec key and
	// operation ("encode" or "decode").
	Dispatches prometheus.CounterOpts
	// Options for the misses counter, labeled by operation. A miss is an
	// encode or decode for which no registered codec matched.
	Misses prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default
// parameters can be configured by passing configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "muxcodec"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Dispatches: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dispatches",
			Help:      "Number of operations dispatched to a codec",
		},
		Misses: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "misses",
			Help:      "Number of operations no registered codec matched",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		dispatches: prometheus.NewCounterVec(c.Dispatches, []string{"key", "op"}),
		misses:     prometheus.NewCounterVec(c.Misses, []string{"op"}),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.dispatches,
			m.misses,
		)
	}

	return &m
}

type metrics struct {
	dispatches *prometheus.CounterVec
	misses     *prometheus.CounterVec
}
