package pathconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// maxFileSize bounds what LoadFile will read.
const maxFileSize = 1 << 20

// LoadJSON decodes a document from r. Unknown fields are rejected.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML decodes a document from r. Unknown fields are rejected.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads, decodes and validates one document. The format follows
// the extension (.yaml, .yml or .json). A document without a name is named
// after its file.
func LoadFile(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if !isPathFile(cleanPath) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("path file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open path file: %w", err)
	}
	defer f.Close()

	var c *Config
	if ext == ".json" {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cleanPath, err)
	}

	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(cleanPath), filepath.Ext(cleanPath))
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid path file %s: %w", cleanPath, err)
	}
	return c, nil
}

// LoadDir loads every path document directly inside dir, in parallel.
// The result is ordered by file name. The first failure cancels the
// remaining loads and is returned; names must be unique across files.
func LoadDir(ctx context.Context, dir string) ([]*Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read path directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && isPathFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	configs := make([]*Config, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := LoadFile(file)
			if err != nil {
				return err
			}
			configs[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(configs))
	for i, c := range configs {
		if prev, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateName, c.Name, prev, files[i])
		}
		seen[c.Name] = files[i]
	}
	return configs, nil
}

func isPathFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
