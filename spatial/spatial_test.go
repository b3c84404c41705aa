package spatial_test

import (
	"math"
	"sort"
	"testing"

	"github.com/eykd/starlane/grid"
	"github.com/eykd/starlane/prng"
	"github.com/eykd/starlane/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation verifies constructor sentinel errors.
func TestNew_Validation(t *testing.T) {
	_, err := spatial.New(0, 100)
	assert.ErrorIs(t, err, spatial.ErrBadCellSize, "cell size 0 must be rejected")

	_, err = spatial.New(-4, 100)
	assert.ErrorIs(t, err, spatial.ErrBadCellSize, "negative cell size must be rejected")

	_, err = spatial.New(16, 0)
	assert.ErrorIs(t, err, spatial.ErrBadGridWidth, "grid width 0 must be rejected")

	h, err := spatial.New(16, 100)
	require.NoError(t, err, "valid parameters must construct")
	assert.Equal(t, 0, h.Len(), "new hash starts empty")
}

// TestInsertAndQuery_Basic verifies a small hand-checked layout.
func TestInsertAndQuery_Basic(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)

	h.Insert(0, 10, 10)
	h.Insert(1, 12, 10)
	h.Insert(2, 40, 40)
	require.Equal(t, 3, h.Len(), "three points stored")

	got := h.QueryRadius(10, 10, 5)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1}, got, "only the two near points fall inside r=5")

	got = h.QueryRadius(40, 40, 1)
	assert.Equal(t, []int{2}, got, "far point found at its own position")
}

// TestQueryRadius_ExactBoundaryIncluded verifies distance == r is inside.
func TestQueryRadius_ExactBoundaryIncluded(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)

	h.Insert(7, 3, 4)
	assert.Equal(t, []int{7}, h.QueryRadius(0, 0, 5), "3-4-5 point at exactly r must be included")
	assert.Empty(t, h.QueryRadius(0, 0, 4.999), "point just outside r must be excluded")
}

// TestQueryRadius_BruteForceEquivalence cross-checks the hash against a
// direct distance scan over seeded random point sets.
func TestQueryRadius_BruteForceEquivalence(t *testing.T) {
	rng := prng.New(2718)
	h, err := spatial.New(16, 64)
	require.NoError(t, err)

	points := make([]grid.Coordinate, 200)
	for i := range points {
		points[i] = grid.Coordinate{X: rng.RandInt(-50, 50), Y: rng.RandInt(-50, 50)}
		h.Insert(i, points[i].X, points[i].Y)
	}

	queries := []struct {
		x, y int
		r    float64
	}{
		{0, 0, 10}, {-40, -40, 25}, {50, 50, 5}, {7, -13, 33.5}, {0, 0, 200},
	}
	for _, q := range queries {
		var want []int
		for i, p := range points {
			dx := float64(p.X - q.x)
			dy := float64(p.Y - q.y)
			if math.Sqrt(dx*dx+dy*dy) <= q.r {
				want = append(want, i)
			}
		}
		got := h.QueryRadius(q.x, q.y, q.r)
		sort.Ints(got)
		assert.Equal(t, want, got, "query (%d,%d) r=%v must match brute force", q.x, q.y, q.r)
	}
}

// TestQueryRadius_NoDuplicatesUnderKeyAliasing forces distinct cells onto
// the same bucket key with a tiny grid width.
func TestQueryRadius_NoDuplicatesUnderKeyAliasing(t *testing.T) {
	h, err := spatial.New(16, 1)
	require.NoError(t, err)

	h.Insert(0, 8, 8)
	h.Insert(1, 24, 8)
	h.Insert(2, 8, 24)

	got := h.QueryRadius(8, 8, 40)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2}, got, "aliased buckets must not produce duplicates")

	counts := make(map[int]int)
	for _, idx := range h.QueryRadius(16, 16, 60) {
		counts[idx]++
	}
	for idx, n := range counts {
		assert.Equal(t, 1, n, "index %d returned %d times", idx, n)
	}
}

// TestQueryRadius_NegativeCoordinates verifies bucketing below the origin.
func TestQueryRadius_NegativeCoordinates(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)

	h.Insert(0, -1, -1)
	h.Insert(1, -30, -30)

	got := h.QueryRadius(-2, -2, 3)
	assert.Equal(t, []int{0}, got, "near-origin negative point must be found")

	got = h.QueryRadius(-30, -30, 2)
	assert.Equal(t, []int{1}, got, "deep negative point must be found in its own cell")
}

// TestQueryRadius_ZeroRadius verifies r=0 matches exact positions only but
// still scans the minimum 3x3 block.
func TestQueryRadius_ZeroRadius(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)

	h.Insert(0, 5, 5)
	h.Insert(1, 6, 5)

	assert.Equal(t, []int{0}, h.QueryRadius(5, 5, 0), "zero radius matches the exact position")
	assert.Empty(t, h.QueryRadius(4, 5, 0), "zero radius misses by one")
}

// TestQueryRadius_DoesNotMutate verifies repeated queries see a stable index.
func TestQueryRadius_DoesNotMutate(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		h.Insert(i, i*3, i*5)
	}

	first := h.QueryRadius(20, 30, 25)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, h.QueryRadius(20, 30, 25), "query %d diverged", i)
	}
	assert.Equal(t, 32, h.Len(), "queries must not change stored count")
}

// TestPosition verifies the position accessor contract.
func TestPosition(t *testing.T) {
	h, err := spatial.New(16, 100)
	require.NoError(t, err)
	h.Insert(3, 11, -7)

	c, ok := h.Position(3)
	assert.True(t, ok, "inserted index must resolve")
	assert.Equal(t, grid.Coordinate{X: 11, Y: -7}, c, "stored position must round-trip")

	_, ok = h.Position(99)
	assert.False(t, ok, "unknown index must report ok=false")
}

func BenchmarkQueryRadius(b *testing.B) {
	rng := prng.New(1)
	h, _ := spatial.New(16, 256)
	for i := 0; i < 10000; i++ {
		h.Insert(i, rng.RandInt(0, 1023), rng.RandInt(0, 1023))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.QueryRadius(512, 512, 48)
	}
}
