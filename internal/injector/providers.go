package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/measures/internal/generator"
	"github.com/zeusync/measures/internal/observability/log"
)

// App bundles what the unitsgen commands need.
type App struct {
	Log       log.Log
	Generator *generator.Generator
}

func NewApp(logger log.Log, gen *generator.Generator) *App {
	return &App{Log: logger, Generator: gen}
}

// ProvideLogger builds the Logger described by cfg. The cleanup flushes it.
func ProvideLogger(cfg log.Config) (*log.Logger, func(), error) {
	logger, err := log.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	generator.New,
	NewApp,
)

// LevelOf maps the verbose flag to a log level.
func LevelOf(verbose bool) log.Level {
	if verbose {
		return log.LevelDebug
	}
	return log.LevelInfo
}
