package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/forces/internal/config"
	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/resolver"
	"github.com/zeusync/forces/internal/report"
)

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvidePrinter,
	NewApp,
)

// App bundles what a command needs to build and display bodies.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Printer *report.Printer
}

func NewApp(cfg *config.Config, logger *log.Logger, printer *report.Printer) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Printer: printer,
	}
}

func ProvideConfig(configPath string) (*config.Config, error) {
	return config.LoadFile(configPath)
}

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.LogLevel)
}

func ProvidePrinter(cfg *config.Config) *report.Printer {
	return report.NewPrinter(cfg.DisplayUnit, report.DefaultPrecision)
}

// BodyOptions returns resolver options reflecting the app configuration.
func (a *App) BodyOptions() []resolver.BodyOption {
	return a.Config.BodyOptions(a.Logger)
}
