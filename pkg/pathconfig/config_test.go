package pathconfig

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/purepursuit/pkg/geometry"
	"github.com/zeusync/purepursuit/pkg/pursuit"
)

func TestLoadYAMLBuildsPursuer(t *testing.T) {
	c, err := LoadFile("testdata/paths/dock.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dock-approach", c.Name)
	assert.Equal(t, StorageFixed, c.Storage)
	require.Len(t, c.Points, 5)

	p, err := NewPursuer[float64](c)
	require.NoError(t, err)
	assert.Equal(t, "dock-approach", p.Name())
	assert.IsType(t, &pursuit.FixedPath[float64]{}, p.Path())
	assert.Equal(t, 0.7, p.Path().Radius())

	target := p.Step(geometry.NewPoint(0.0, 0.0))
	assert.InDelta(t, 0.7, target.At(0), 1e-12)
	assert.Zero(t, target.At(1))
}

func TestLoadJSONHonoursClamp(t *testing.T) {
	c, err := LoadFile("testdata/paths/lift.json")
	require.NoError(t, err)
	require.NotNil(t, c.Clamp)
	assert.False(t, *c.Clamp)

	p, err := NewPursuer[float64](c)
	require.NoError(t, err)
	assert.IsType(t, &pursuit.DynamicPath[float64]{}, p.Path())

	p.Step(geometry.NewPoint(0.0, 0.0, 0.0))
	// Beyond the end of the first segment: unclamped, the target is the
	// farther crossing on the segment's line, past the robot.
	target := p.Step(geometry.NewPoint(0.0, 0.0, 9.0))
	assert.InDelta(t, 11.0, target.At(2), 1e-9)
}

func TestLoadFileNamesUnnamedDocuments(t *testing.T) {
	c, err := LoadFile("testdata/unnamed.yml")
	require.NoError(t, err)
	assert.Equal(t, "unnamed", c.Name)
}

func TestLoadFileRejectsDegeneratePath(t *testing.T) {
	_, err := LoadFile("testdata/degenerate.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, pursuit.ErrDegenerateSegment)
	assert.Contains(t, err.Error(), `path "stutter"`)
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	_, err := LoadFile("testdata/paths/README.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: x\nradus: 1\n"))
	assert.Error(t, err)

	_, err = LoadJSON(strings.NewReader(`{"name": "x", "radus": 1}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	radius := 1.0
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing name", Config{Dimension: 2, Radius: &radius}, ErrNameRequired},
		{"missing dimension", Config{Name: "a", Radius: &radius}, ErrDimensionRequired},
		{"bad storage", Config{Name: "a", Dimension: 2, Storage: "ring"}, ErrUnknownStorage},
		{"missing radius", Config{Name: "a", Dimension: 2, Points: [][]float64{{0, 0}, {1, 0}}}, pursuit.ErrNoRadius},
		{"negative dimension", Config{Name: "a", Dimension: -1, Radius: &radius}, pursuit.ErrInvalidDimension},
		{"ragged points", Config{Name: "a", Dimension: 2, Radius: &radius, Points: [][]float64{{0, 0}, {1}}}, pursuit.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.cfg.Validate(), tc.want)
		})
	}

	ok := Config{Name: "a", Dimension: 2, Radius: &radius, Points: [][]float64{{0, 0}, {1, 0}}}
	assert.NoError(t, ok.Validate())
}

func TestCallerOptionsOverrideDocument(t *testing.T) {
	c, err := LoadFile("testdata/paths/dock.yaml")
	require.NoError(t, err)

	p, err := NewPursuer[float32](c, pursuit.WithName("override"))
	require.NoError(t, err)
	assert.Equal(t, "override", p.Name())
}

func TestFromPathRoundTrip(t *testing.T) {
	src, err := LoadFile("testdata/paths/dock.yaml")
	require.NoError(t, err)
	path, err := Builder[float64](src).BuildPath()
	require.NoError(t, err)

	doc := FromPath("copy", path)

	yml, err := doc.ToYAML()
	require.NoError(t, err)
	fromYAML, err := LoadYAML(bytes.NewReader(yml))
	require.NoError(t, err)

	js, err := doc.ToJSON()
	require.NoError(t, err)
	fromJSON, err := LoadJSON(bytes.NewReader(js))
	require.NoError(t, err)

	for _, got := range []*Config{fromYAML, fromJSON} {
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
		rebuilt, err := Builder[float64](got).BuildPath()
		require.NoError(t, err)
		assert.Equal(t, pursuit.Fingerprint(path), pursuit.Fingerprint(rebuilt))
	}
}

func TestLoadDir(t *testing.T) {
	configs, err := LoadDir(context.Background(), "testdata/paths")
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "dock-approach", configs[0].Name)
	assert.Equal(t, "lift", configs[1].Name)
}

func TestLoadDirFailsOnBadDocument(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, "testdata/paths/dock.yaml", filepath.Join(dir, "a.yaml"))
	copyFile(t, "testdata/degenerate.yaml", filepath.Join(dir, "b.yaml"))

	_, err := LoadDir(context.Background(), dir)
	assert.ErrorIs(t, err, pursuit.ErrDegenerateSegment)
}

func TestLoadDirRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, "testdata/paths/dock.yaml", filepath.Join(dir, "a.yaml"))
	copyFile(t, "testdata/paths/dock.yaml", filepath.Join(dir, "b.yml"))

	_, err := LoadDir(context.Background(), dir)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestLoadDirHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, "testdata/paths")
	assert.ErrorIs(t, err, context.Canceled)
}

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o600))
}
