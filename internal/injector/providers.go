package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/purepursuit/pkg/observability/log"
	"github.com/zeusync/purepursuit/pkg/pathconfig"
	"github.com/zeusync/purepursuit/pkg/pursuit"
)

// PathFile is the location of a path document.
type PathFile string

// ProviderSet wires a float64 pursuer from a path document and the
// process-wide logger.
var ProviderSet = wire.NewSet(ProvideLogger, ProvideConfig, ProvidePursuer)

func ProvideLogger() *log.Logger {
	return log.Provide()
}

func ProvideConfig(file PathFile) (*pathconfig.Config, error) {
	return pathconfig.LoadFile(string(file))
}

func ProvidePursuer(cfg *pathconfig.Config, logger *log.Logger) (*pursuit.Pursuer[float64], error) {
	return pathconfig.NewPursuer[float64](cfg, pursuit.WithLogger(logger))
}
