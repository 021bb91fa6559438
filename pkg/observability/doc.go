/*
Package observability provides lifecycle hooks for monitoring the turing engine.

Metrics records Prometheus counters and histograms for runs, steps and skipped
description lines. LoggingHooks writes the same events as structured log
records. Chain combines several hook sets into one.

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	eng := turing.New(turing.WithLifecycleHooks(observability.Chain(
		metrics.Hooks(),
		observability.LoggingHooks(logger),
	)))
*/
package observability
