// Package metrics provides Prometheus instrumentation for goxf components.
//
// This package enables monitoring and observability for goxf's transduction
// pipelines, bounded channels, select operations, and sinks through
// Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Transduction pipelines (steps, outputs, completions, early terminations)
//   - Bounded channels (puts, takes, drops, blocked puts, buffer usage)
//   - Select operations (outcomes: value, closed, timeout, canceled)
//   - Sinks (items written, flushes, write errors)
//
// # Quick Start
//
// Enable metrics by naming the component and passing a registry:
//
//	ch := channel.NewWithConfig(channel.Config{
//		Capacity: 64,
//		Name:     "ingest",
//		Metrics:  metrics.DefaultRegistry,
//	}, transduce.Identity[string]())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := metrics.NewRegistry(prometheus.NewRegistry())
//	cfg := channel.Config{Capacity: 64, Name: "ingest", Metrics: registry}
//
// # Available Metrics
//
// ## Pipeline Metrics
//
//   - goxf_pipeline_steps_total: Input values stepped through pipelines
//   - goxf_pipeline_outputs_total: Output values produced by pipelines
//   - goxf_pipeline_completions_total: Pipeline completion flushes
//   - goxf_pipeline_early_terminations_total: Pipelines terminated early via a reduced value
//
// ## Channel Metrics
//
//   - goxf_channel_puts_total: Accepted put operations
//   - goxf_channel_takes_total: Successful take operations
//   - goxf_channel_drops_total: Values dropped under backpressure
//   - goxf_channel_blocked_puts_total: Put operations that had to block
//   - goxf_channel_buffer_size: Channel buffer capacity
//   - goxf_channel_buffer_usage: Current number of buffered values
//
// ## Select Metrics
//
//   - goxf_select_resolved_total: Select operations by outcome
//
// ## Sink Metrics
//
//   - goxf_sink_items_total: Items written to sinks
//   - goxf_sink_flushes_total: Sink flushes
//   - goxf_sink_errors_total: Sink write errors
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - execution_context: "channel", "sequence", "transduce"
//   - pipeline_name: User-provided name for the pipeline
//   - channel_name: User-provided name for the channel instance
//   - strategy: Backpressure strategy (e.g., "drop", "drop_oldest")
//   - outcome: Select outcome ("value", "closed", "timeout", "canceled")
//   - sink_type: "lines" or "redis_list"
//   - sink_name: User-provided name for the sink instance
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Components with no Name configured skip metric updates entirely
package metrics
