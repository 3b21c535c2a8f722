package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/purepursuit/pkg/pathconfig"
)

func TestInitializePursuer(t *testing.T) {
	p, err := InitializePursuer("../../pkg/pathconfig/testdata/paths/dock.yaml")
	require.NoError(t, err)
	assert.Equal(t, "dock-approach", p.Name())
	assert.Equal(t, 5, p.Path().Len())
	assert.False(t, p.State().Started)
}

func TestInitializePursuerPropagatesConfigErrors(t *testing.T) {
	_, err := InitializePursuer("../../pkg/pathconfig/testdata/paths/README.txt")
	assert.ErrorIs(t, err, pathconfig.ErrUnsupportedFormat)
}
