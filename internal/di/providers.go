package di

import (
	"dpscan/internal/providers"
	"dpscan/internal/scanner"
	"dpscan/internal/services"
)

// provideScannerMetrics narrows the metrics provider to the slice the
// scanner consumes.
func provideScannerMetrics(m providers.MetricsProviderInterface) scanner.Metrics {
	return m
}

// provideSnapshotInfo exposes the store to the metrics gauges.
func provideSnapshotInfo(store *services.SnapshotStore) providers.SnapshotInfo {
	return store
}
