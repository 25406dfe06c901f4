//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"dpscan/internal"
	"dpscan/internal/controllers"
	"dpscan/internal/providers"
	"dpscan/internal/report"
	"dpscan/internal/scanner"
	"dpscan/internal/services"
	"dpscan/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewSnapshotStore,
		provideSnapshotInfo,
		provideScannerMetrics,
		scanner.NewScanner,
		services.NewSnapshotService,

		report.NewZstdCompressor,
		report.NewWriter,
		services.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
