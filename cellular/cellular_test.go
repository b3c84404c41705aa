package cellular_test

import (
	"testing"

	"github.com/eykd/starlane/cellular"
	"github.com/eykd/starlane/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundaryAllWall reports whether every edge cell of a width×height grid is Wall.
func boundaryAllWall(cells []byte, width, height int) bool {
	for x := 0; x < width; x++ {
		if cells[x] != cellular.Wall || cells[(height-1)*width+x] != cellular.Wall {
			return false
		}
	}
	for y := 0; y < height; y++ {
		if cells[y*width] != cellular.Wall || cells[y*width+width-1] != cellular.Wall {
			return false
		}
	}
	return true
}

// TestGenerate_BoundaryInvariant verifies the forced-wall border holds for
// any fill probability and iteration count.
func TestGenerate_BoundaryInvariant(t *testing.T) {
	cases := []struct {
		name string
		opts cellular.Options
	}{
		{"default shape", cellular.DefaultOptions(20, 15)},
		{"no fill", cellular.Options{Width: 12, Height: 12, FillProbability: 0, Iterations: 3}},
		{"full fill", cellular.Options{Width: 12, Height: 12, FillProbability: 1, Iterations: 3}},
		{"no smoothing", cellular.Options{Width: 9, Height: 7, FillProbability: 0.45, Iterations: 0}},
		{"heavy smoothing", cellular.Options{Width: 16, Height: 16, FillProbability: 0.6, Iterations: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells, err := cellular.Generate(prng.New(404), tc.opts)
			require.NoError(t, err)
			require.Len(t, cells, tc.opts.Width*tc.opts.Height, "grid length must be width*height")
			assert.True(t, boundaryAllWall(cells, tc.opts.Width, tc.opts.Height), "boundary must be all wall")
		})
	}
}

// TestGenerate_Deterministic verifies byte-identical output for equal seeds
// and diverging output for distinct seeds.
func TestGenerate_Deterministic(t *testing.T) {
	opts := cellular.DefaultOptions(24, 24)

	a, err := cellular.Generate(prng.New(9000), opts)
	require.NoError(t, err)
	b, err := cellular.Generate(prng.New(9000), opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "equal seeds must reproduce the grid byte for byte")

	c, err := cellular.Generate(prng.New(9001), opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "distinct seeds must produce distinct grids")
}

// TestStepGrid_KnownNeighborhoods steps a hand-checked 5x5 grid once: with
// an all-open interior, the four corner interior cells see five boundary
// walls in their 3x3 block and flip to wall; the rest stay open.
func TestStepGrid_KnownNeighborhoods(t *testing.T) {
	in := []byte{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}
	want := []byte{
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 0, 0, 0, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	}
	got := cellular.StepGrid(in, 5, 5)
	assert.Equal(t, want, got, "4-5 rule must flip exactly the corner interior cells")
}

// TestStepGrid_AllWallFixedPoint verifies a solid grid is stable under smoothing.
func TestStepGrid_AllWallFixedPoint(t *testing.T) {
	in := make([]byte, 8*8)
	for i := range in {
		in[i] = cellular.Wall
	}
	got := cellular.StepGrid(in, 8, 8)
	assert.Equal(t, in, got, "all-wall grid must be a fixed point")
}

// TestStepGrid_DoesNotMutateInput verifies the input buffer is read-only.
func TestStepGrid_DoesNotMutateInput(t *testing.T) {
	in := cellular.InitializeGrid(prng.New(5), 10, 10, 0.5)
	snapshot := make([]byte, len(in))
	copy(snapshot, in)

	_ = cellular.StepGrid(in, 10, 10)
	assert.Equal(t, snapshot, in, "StepGrid must not write to its input")
}

// TestInitializeGrid_FillExtremes verifies probability 0 and 1 pin every
// interior cell.
func TestInitializeGrid_FillExtremes(t *testing.T) {
	open := cellular.InitializeGrid(prng.New(1), 10, 10, 0)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			assert.Equal(t, cellular.Open, open[y*10+x], "fill=0 interior cell (%d,%d) must be open", x, y)
		}
	}

	wall := cellular.InitializeGrid(prng.New(1), 10, 10, 1)
	for i, c := range wall {
		assert.Equal(t, cellular.Wall, c, "fill=1 cell %d must be wall", i)
	}
}

// TestInitializeGrid_DrawBudget pins the contract of one draw per interior
// cell and none for the boundary.
func TestInitializeGrid_DrawBudget(t *testing.T) {
	used := prng.New(64)
	reference := prng.New(64)

	const w, h = 11, 7
	_ = cellular.InitializeGrid(used, w, h, 0.45)
	for i := 0; i < (w-2)*(h-2); i++ {
		_ = reference.Random()
	}
	assert.Equal(t, reference.Uint32(), used.Uint32(), "initialization must consume exactly one draw per interior cell")
}

// TestGenerate_Validation verifies option sentinel errors.
func TestGenerate_Validation(t *testing.T) {
	rng := prng.New(1)

	_, err := cellular.Generate(rng, cellular.Options{Width: 0, Height: 5, FillProbability: 0.5})
	assert.ErrorIs(t, err, cellular.ErrBadDimensions, "zero width must be rejected")

	_, err = cellular.Generate(rng, cellular.Options{Width: 5, Height: -1, FillProbability: 0.5})
	assert.ErrorIs(t, err, cellular.ErrBadDimensions, "negative height must be rejected")

	_, err = cellular.Generate(rng, cellular.Options{Width: 5, Height: 5, FillProbability: 1.5})
	assert.ErrorIs(t, err, cellular.ErrBadFillProbability, "probability above 1 must be rejected")

	_, err = cellular.Generate(rng, cellular.Options{Width: 5, Height: 5, FillProbability: 0.5, Iterations: -2})
	assert.ErrorIs(t, err, cellular.ErrBadIterations, "negative iterations must be rejected")
}

func BenchmarkGenerate(b *testing.B) {
	opts := cellular.DefaultOptions(128, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cellular.Generate(prng.New(int64(i)), opts)
	}
}
