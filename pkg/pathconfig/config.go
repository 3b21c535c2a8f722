// Package pathconfig describes pursuit paths in YAML or JSON documents and
// turns them into pursuit builders and pursuers.
package pathconfig

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/purepursuit/pkg/geometry"
	"github.com/zeusync/purepursuit/pkg/pursuit"
)

// Storage selects the waypoint storage strategy of the built path.
type Storage string

const (
	StorageDynamic Storage = "dynamic"
	StorageFixed   Storage = "fixed"
)

var (
	ErrNameRequired      = errors.New("path name is required")
	ErrDimensionRequired = errors.New("path dimension is required")
	ErrUnknownStorage    = errors.New("unknown storage strategy")
	ErrUnsupportedFormat = errors.New("unsupported path file format")
	ErrDuplicateName     = errors.New("duplicate path name")
)

// Config is one path document.
//
//	name: dock-approach
//	dimension: 2
//	radius: 0.7
//	storage: fixed
//	points:
//	  - [0, 0]
//	  - [2, 0]
type Config struct {
	Name      string      `json:"name" yaml:"name"`
	Dimension int         `json:"dimension" yaml:"dimension"`
	Radius    *float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Storage   Storage     `json:"storage,omitempty" yaml:"storage,omitempty"`
	Clamp     *bool       `json:"clamp,omitempty" yaml:"clamp,omitempty"`
	Points    [][]float64 `json:"points" yaml:"points,flow"`
}

// Validate checks the document and the path it describes.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if c.Dimension == 0 {
		return fmt.Errorf("path %q: %w", c.Name, ErrDimensionRequired)
	}
	switch c.Storage {
	case "", StorageDynamic, StorageFixed:
	default:
		return fmt.Errorf("path %q: %w: %q", c.Name, ErrUnknownStorage, c.Storage)
	}
	if _, err := Builder[float64](c).BuildPath(); err != nil {
		return fmt.Errorf("path %q: %w", c.Name, err)
	}
	return nil
}

// Builder returns a pursuit builder loaded with the document's radius and
// waypoints. The radius is left unset when the document omits it, so
// Build reports pursuit.ErrNoRadius.
func Builder[T geometry.Scalar](c *Config) *pursuit.Builder[T] {
	var b *pursuit.Builder[T]
	if c.Storage == StorageFixed {
		b = pursuit.NewFixedBuilder[T](c.Dimension, len(c.Points))
	} else {
		b = pursuit.NewDynamicBuilder[T](c.Dimension)
	}
	if c.Radius != nil {
		b.WithRadius(T(*c.Radius))
	}
	coords := make([]T, 0, max(c.Dimension, 0))
	for _, raw := range c.Points {
		coords = coords[:0]
		for _, v := range raw {
			coords = append(coords, T(v))
		}
		b.WithPoint(geometry.NewPoint(coords...))
	}
	return b
}

// NewPursuer builds a pursuer named after the document. Options given by
// the caller take precedence over the document's settings.
func NewPursuer[T geometry.Scalar](c *Config, opts ...pursuit.Option) (*pursuit.Pursuer[T], error) {
	base := []pursuit.Option{pursuit.WithName(c.Name)}
	if c.Clamp != nil {
		base = append(base, pursuit.WithClamp(*c.Clamp))
	}
	p, err := Builder[T](c).Build(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", c.Name, err)
	}
	return p, nil
}

// FromPath describes an existing path as a document.
func FromPath[T geometry.Scalar](name string, path pursuit.Path[T]) *Config {
	radius := float64(path.Radius())
	c := &Config{
		Name:      name,
		Dimension: path.Dim(),
		Radius:    &radius,
		Points:    make([][]float64, path.Len()),
	}
	for i := range c.Points {
		pt := path.At(i)
		row := make([]float64, pt.Dim())
		for j := range row {
			row[j] = float64(pt.At(j))
		}
		c.Points[i] = row
	}
	return c
}

// ToYAML encodes the document as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ToJSON encodes the document as indented JSON.
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
