// SPDX-License-Identifier: MIT
// Package: starlane/export
//
// export.go — galaxy artifact writers.
//
// Contract (strict):
//   • File names and JSON field names are a FROZEN wire format.
//   • Artifacts derive from the galaxy alone: no clocks, no hostnames,
//     no environment. Same galaxy in, same bytes out.
//   • Writers never mutate the galaxy; the PNG encoder reads the map
//     bytes in place.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/galaxy"
)

// Artifact file names within the export directory.
const (
	FileSystems    = "systems.json"
	FileRoutes     = "routes.json"
	FileMetadata   = "metadata.json"
	FileCostmapBin = "costmap.bin"
	FileCostmapPNG = "costmap.png"
)

// ErrNilGalaxy indicates WriteGalaxy was handed a nil galaxy or a galaxy
// without a cost map.
var ErrNilGalaxy = errors.New("export: nil galaxy")

// Options configures WriteGalaxy.
//
// Concurrency – parallel artifact writers; values < 1 mean one writer
// per artifact. Logger – progress log destination; nil means
// slog.Default().
type Options struct {
	Concurrency int
	Logger      *slog.Logger
}

// Option is a functional option for configuring WriteGalaxy.
type Option func(*Options)

// WithConcurrency caps parallel artifact writers. Panics on values < 1;
// use the default for "one per artifact".
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("export: WithConcurrency requires n >= 1")
	}
	return func(o *Options) { o.Concurrency = n }
}

// WithLogger routes progress logs. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("export: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// Metadata is the machine-readable summary written to metadata.json.
// The quantization block is copied verbatim so costmap.bin can be
// decoded without regenerating anything.
type Metadata struct {
	Seed         int64                `json:"seed"`
	SystemCount  int                  `json:"systemCount"`
	RouteCount   int                  `json:"routeCount"`
	Quantization costmap.Quantization `json:"quantization"`
}

// routeRecord is the wire form of one route: IDs, cost, and the path as
// [x,y] tuples.
type routeRecord struct {
	OriginID      uuid.UUID `json:"originId"`
	DestinationID uuid.UUID `json:"destinationId"`
	Cost          float64   `json:"cost"`
	Path          [][2]int  `json:"path"`
}

// WriteGalaxy writes every artifact of g into dir, creating it if
// needed. Artifacts build and write concurrently; the first failure
// cancels the remaining writers and is returned.
func WriteGalaxy(ctx context.Context, dir string, g *galaxy.Galaxy, opts ...Option) error {
	if g == nil || g.CostMap == nil {
		return ErrNilGalaxy
	}

	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "export", "dir", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir: %w", err)
	}

	artifacts := []struct {
		name  string
		build func() ([]byte, error)
	}{
		{FileSystems, func() ([]byte, error) { return buildSystems(g) }},
		{FileRoutes, func() ([]byte, error) { return buildRoutes(g) }},
		{FileMetadata, func() ([]byte, error) { return buildMetadata(g) }},
		{FileCostmapBin, func() ([]byte, error) { return g.CostMap.Data, nil }},
		{FileCostmapPNG, func() ([]byte, error) { return buildPNG(g.CostMap) }},
	}

	eg, ctx := errgroup.WithContext(ctx)
	if o.Concurrency >= 1 {
		eg.SetLimit(o.Concurrency)
	}
	for _, a := range artifacts {
		a := a
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := a.build()
			if err != nil {
				return fmt.Errorf("export: build %s: %w", a.name, err)
			}
			if err := os.WriteFile(filepath.Join(dir, a.name), raw, 0o644); err != nil {
				return fmt.Errorf("export: write %s: %w", a.name, err)
			}
			logger.Debug("artifact written", "name", a.name, "bytes", len(raw))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("galaxy exported",
		"systems", len(g.Systems),
		"routes", len(g.Routes),
		"map_cells", len(g.CostMap.Data),
	)
	return nil
}

func buildSystems(g *galaxy.Galaxy) ([]byte, error) {
	return json.MarshalIndent(g.Systems, "", "  ")
}

func buildRoutes(g *galaxy.Galaxy) ([]byte, error) {
	records := make([]routeRecord, 0, len(g.Routes))
	for _, r := range g.Routes {
		path := make([][2]int, len(r.Path))
		for i, c := range r.Path {
			path[i] = [2]int{c.X, c.Y}
		}
		records = append(records, routeRecord{
			OriginID:      r.Origin,
			DestinationID: r.Destination,
			Cost:          r.Cost,
			Path:          path,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

func buildMetadata(g *galaxy.Galaxy) ([]byte, error) {
	return json.MarshalIndent(Metadata{
		Seed:         g.Seed,
		SystemCount:  len(g.Systems),
		RouteCount:   len(g.Routes),
		Quantization: g.CostMap.Quantization,
	}, "", "  ")
}

// buildPNG renders the map bytes as 8-bit grayscale, darker pixels being
// cheaper cells. The image aliases the map data read-only.
func buildPNG(m *costmap.CostMap) ([]byte, error) {
	img := &image.Gray{
		Pix:    m.Data,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
