// Package grid defines coordinates, bounds, and row-major index arithmetic
// shared by all starlane generation stages.
package grid

// Coordinate is an integer position in galaxy space.
// JSON tags match the wire form emitted by the export package.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is an inclusive axis-aligned rectangle: both (MinX, MinY) and
// (MaxX, MaxY) lie inside it. A Bounds with MaxX < MinX or MaxY < MinY is
// empty and contains nothing.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns covered by b, 0 when b is empty.
// Complexity: O(1).
func (b Bounds) Width() int {
	if b.MaxX < b.MinX {
		return 0
	}
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered by b, 0 when b is empty.
// Complexity: O(1).
func (b Bounds) Height() int {
	if b.MaxY < b.MinY {
		return 0
	}
	return b.MaxY - b.MinY + 1
}

// Contains reports whether c lies inside b (inclusive on all edges).
// Complexity: O(1).
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Expand grows b by pad cells on every side. Negative pad shrinks it and may
// produce an empty Bounds.
// Complexity: O(1).
func (b Bounds) Expand(pad int) Bounds {
	return Bounds{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// Index maps (x, y) to its row-major offset: y*width + x.
// Callers are responsible for bounds checks; Index itself does not validate.
// Complexity: O(1).
func Index(x, y, width int) int {
	return y*width + x
}

// Unindex converts a row-major offset back to (x, y).
// Complexity: O(1).
func Unindex(idx, width int) (x, y int) {
	return idx % width, idx / width
}

// FloorDiv divides a by b rounding toward negative infinity, so
// FloorDiv(-1, 16) == -1 where Go's a/b would give 0. b must be positive.
// Complexity: O(1).
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
