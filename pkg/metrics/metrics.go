// Package metrics provides Prometheus instrumentation for goxf components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goxf components.
type Registry struct {
	// Transduction Metrics
	PipelineSteps        *prometheus.CounterVec
	PipelineOutputs      *prometheus.CounterVec
	PipelineCompletions  *prometheus.CounterVec
	PipelineTerminations *prometheus.CounterVec

	// Channel Metrics
	ChannelPuts        *prometheus.CounterVec
	ChannelTakes       *prometheus.CounterVec
	ChannelDrops       *prometheus.CounterVec
	ChannelBlockedPuts *prometheus.CounterVec
	ChannelBufferSize  *prometheus.GaugeVec
	ChannelBufferUsage *prometheus.GaugeVec

	// Select Metrics
	SelectResolved *prometheus.CounterVec

	// Sink Metrics
	SinkItems   *prometheus.CounterVec
	SinkFlushes *prometheus.CounterVec
	SinkErrors  *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by goxf components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Transduction Metrics
		PipelineSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "pipeline",
				Name:      "steps_total",
				Help:      "Total number of input values stepped through pipelines",
			},
			[]string{"execution_context", "pipeline_name"},
		),

		PipelineOutputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "pipeline",
				Name:      "outputs_total",
				Help:      "Total number of output values produced by pipelines",
			},
			[]string{"execution_context", "pipeline_name"},
		),

		PipelineCompletions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "pipeline",
				Name:      "completions_total",
				Help:      "Total number of pipeline completion flushes",
			},
			[]string{"execution_context", "pipeline_name"},
		),

		PipelineTerminations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "pipeline",
				Name:      "early_terminations_total",
				Help:      "Total number of pipelines that terminated early via a reduced value",
			},
			[]string{"execution_context", "pipeline_name"},
		),

		// Channel Metrics
		ChannelPuts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "puts_total",
				Help:      "Total number of accepted put operations",
			},
			[]string{"channel_name"},
		),

		ChannelTakes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "takes_total",
				Help:      "Total number of successful take operations",
			},
			[]string{"channel_name"},
		),

		ChannelDrops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "drops_total",
				Help:      "Total number of values dropped under backpressure",
			},
			[]string{"strategy", "channel_name"},
		),

		ChannelBlockedPuts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "blocked_puts_total",
				Help:      "Total number of put operations that had to block",
			},
			[]string{"channel_name"},
		),

		ChannelBufferSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "buffer_size",
				Help:      "Channel buffer capacity",
			},
			[]string{"channel_name"},
		),

		ChannelBufferUsage: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goxf",
				Subsystem: "channel",
				Name:      "buffer_usage",
				Help:      "Current number of buffered values",
			},
			[]string{"channel_name"},
		),

		// Select Metrics
		SelectResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "select",
				Name:      "resolved_total",
				Help:      "Total number of select operations by outcome",
			},
			[]string{"outcome"},
		),

		// Sink Metrics
		SinkItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "sink",
				Name:      "items_total",
				Help:      "Total number of items written to sinks",
			},
			[]string{"sink_type", "sink_name"},
		),

		SinkFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "sink",
				Name:      "flushes_total",
				Help:      "Total number of sink flushes",
			},
			[]string{"sink_type", "sink_name"},
		),

		SinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goxf",
				Subsystem: "sink",
				Name:      "errors_total",
				Help:      "Total number of sink write errors",
			},
			[]string{"sink_type", "sink_name"},
		),
	}
}
