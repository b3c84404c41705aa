package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eykd/starlane/costmap"
	"github.com/eykd/starlane/export"
	"github.com/eykd/starlane/galaxy"
)

// testGalaxy generates one small galaxy shared by the write tests.
func testGalaxy(t *testing.T) *galaxy.Galaxy {
	t.Helper()
	cfg := galaxy.DefaultConfig()
	cfg.SystemCount = 10
	cfg.GalaxyRadius = 14
	cfg.MinSeparation = 3
	cfg.Terrain.Padding = 4
	g, err := galaxy.Generate(cfg, 42)
	require.NoError(t, err)
	return g
}

func allArtifacts() []string {
	return []string{
		export.FileSystems, export.FileRoutes, export.FileMetadata,
		export.FileCostmapBin, export.FileCostmapPNG,
	}
}

// TestWriteGalaxy_WritesAllArtifacts verifies every artifact lands on
// disk, non-empty.
func TestWriteGalaxy_WritesAllArtifacts(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()

	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))
	for _, name := range allArtifacts() {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "artifact %s must exist", name)
		assert.Positive(t, info.Size(), "artifact %s must not be empty", name)
	}
}

// TestWriteGalaxy_SystemsRoundTrip verifies systems.json decodes back to
// the exact system records.
func TestWriteGalaxy_SystemsRoundTrip(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))

	raw, err := os.ReadFile(filepath.Join(dir, export.FileSystems))
	require.NoError(t, err)

	var got []galaxy.StarSystem
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, g.Systems, got)
}

// TestWriteGalaxy_RoutesWireFormat verifies the route encoding: IDs,
// cost, and the path as [x,y] tuples.
func TestWriteGalaxy_RoutesWireFormat(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))

	raw, err := os.ReadFile(filepath.Join(dir, export.FileRoutes))
	require.NoError(t, err)

	var got []struct {
		OriginID      uuid.UUID `json:"originId"`
		DestinationID uuid.UUID `json:"destinationId"`
		Cost          float64   `json:"cost"`
		Path          [][2]int  `json:"path"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, len(g.Routes))

	for i, r := range g.Routes {
		assert.Equal(t, r.Origin, got[i].OriginID)
		assert.Equal(t, r.Destination, got[i].DestinationID)
		assert.Equal(t, r.Cost, got[i].Cost)
		require.Len(t, got[i].Path, len(r.Path))
		for k, c := range r.Path {
			assert.Equal(t, [2]int{c.X, c.Y}, got[i].Path[k])
		}
	}
}

// TestWriteGalaxy_Metadata verifies the summary counts and the verbatim
// quantization block.
func TestWriteGalaxy_Metadata(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))

	raw, err := os.ReadFile(filepath.Join(dir, export.FileMetadata))
	require.NoError(t, err)

	var meta export.Metadata
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, export.Metadata{
		Seed:         g.Seed,
		SystemCount:  len(g.Systems),
		RouteCount:   len(g.Routes),
		Quantization: g.CostMap.Quantization,
	}, meta)

	assert.Contains(t, string(raw), `"gridOriginX"`, "quantization keys are part of the wire format")
}

// TestWriteGalaxy_CostmapArtifacts verifies the raw dump matches the map
// bytes and the PNG renders them pixel for pixel.
func TestWriteGalaxy_CostmapArtifacts(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))

	raw, err := os.ReadFile(filepath.Join(dir, export.FileCostmapBin))
	require.NoError(t, err)
	assert.Equal(t, g.CostMap.Data, raw, "bin dump must be the raw map bytes")

	f, err := os.Open(filepath.Join(dir, export.FileCostmapPNG))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bounds := img.Bounds()
	require.Equal(t, g.CostMap.Width, bounds.Dx())
	require.Equal(t, g.CostMap.Height, bounds.Dy())

	m := g.CostMap
	for _, at := range [][2]int{{0, 0}, {m.Width - 1, 0}, {m.Width / 2, m.Height / 2}, {m.Width - 1, m.Height - 1}} {
		r, _, _, _ := img.At(at[0], at[1]).RGBA()
		assert.Equal(t, uint32(m.At(at[0], at[1]))*0x101, r,
			"pixel (%d,%d) must encode the map byte", at[0], at[1])
	}
}

// TestWriteGalaxy_Deterministic verifies exporting the same galaxy twice
// yields byte-identical artifacts.
func TestWriteGalaxy_Deterministic(t *testing.T) {
	g := testGalaxy(t)
	dirA, dirB := t.TempDir(), t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dirA, g))
	require.NoError(t, export.WriteGalaxy(context.Background(), dirB, g))

	for _, name := range allArtifacts() {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(a, b), "artifact %s must be reproducible", name)
	}
}

// TestWriteGalaxy_NilGalaxy verifies the guard sentinel.
func TestWriteGalaxy_NilGalaxy(t *testing.T) {
	err := export.WriteGalaxy(context.Background(), t.TempDir(), nil)
	assert.ErrorIs(t, err, export.ErrNilGalaxy)

	err = export.WriteGalaxy(context.Background(), t.TempDir(), &galaxy.Galaxy{})
	assert.ErrorIs(t, err, export.ErrNilGalaxy, "a galaxy without a cost map is rejected")
}

// TestWriteGalaxy_CanceledContext verifies cancellation wins before any
// artifact is written.
func TestWriteGalaxy_CanceledContext(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := export.WriteGalaxy(ctx, dir, g)
	require.ErrorIs(t, err, context.Canceled)

	for _, name := range allArtifacts() {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(statErr), "artifact %s must not exist after cancellation", name)
	}
}

// TestWriteGalaxy_Options covers the sequential path and option
// validation panics.
func TestWriteGalaxy_Options(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g, export.WithConcurrency(1)))
	for _, name := range allArtifacts() {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "artifact %s must exist with a single writer", name)
	}

	assert.Panics(t, func() { export.WithConcurrency(0) })
	assert.Panics(t, func() { export.WithLogger(nil) })
}

// TestMetadata_Decodable is the consumer check: quantization from
// metadata.json decodes costmap.bin without the generator.
func TestMetadata_Decodable(t *testing.T) {
	g := testGalaxy(t)
	dir := t.TempDir()
	require.NoError(t, export.WriteGalaxy(context.Background(), dir, g))

	rawMeta, err := os.ReadFile(filepath.Join(dir, export.FileMetadata))
	require.NoError(t, err)
	var meta export.Metadata
	require.NoError(t, json.Unmarshal(rawMeta, &meta))

	rawMap, err := os.ReadFile(filepath.Join(dir, export.FileCostmapBin))
	require.NoError(t, err)
	require.Len(t, rawMap, meta.Quantization.Width*meta.Quantization.Height)

	rebuilt := costmap.CostMap{
		Data:         rawMap,
		Width:        meta.Quantization.Width,
		Height:       meta.Quantization.Height,
		Quantization: meta.Quantization,
	}
	assert.Equal(t, g.CostMap.DecodeAt(3, 3), rebuilt.DecodeAt(3, 3),
		"decoded costs must survive the disk round trip")
}
