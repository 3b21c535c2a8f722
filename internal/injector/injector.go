//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/purepursuit/pkg/pursuit"
)

func InitializePursuer(file PathFile) (*pursuit.Pursuer[float64], error) {
	wire.Build(ProviderSet)
	return nil, nil
}
