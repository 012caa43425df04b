package layout

// Cursor enumerates every logical index vector of a shape in row-major order
// (last dimension fastest), starting from all-zeros. The traversal order is
// a designed invariant: compaction, scatter and host export all walk views
// in exactly this order, so a compact buffer and a cursor over the same
// shape always agree on element position.
//
// A cursor is restartable and owns its index vector. It enumerates exactly
// Shape.NumElements() vectors; a rank-0 shape yields one empty vector.
type Cursor struct {
	shape Shape
	index []int
	done  bool
}

// NewCursor returns a cursor positioned at the all-zero index vector.
func NewCursor(shape Shape) *Cursor {
	return &Cursor{
		shape: shape,
		index: make([]int, len(shape)),
	}
}

// Index returns the current logical index vector. The slice is reused by
// Next; copy it if it must survive the next advance.
func (c *Cursor) Index() []int {
	return c.index
}

// Next advances to the following index vector, odometer style: the last
// dimension increments first, rolling over to zero and carrying into earlier
// dimensions. It returns false once every vector has been visited.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	for i := len(c.index) - 1; i >= 0; i-- {
		if c.index[i] < c.shape[i]-1 {
			c.index[i]++
			return true
		}
		c.index[i] = 0
	}
	c.done = true
	return false
}

// Reset rewinds the cursor to the all-zero index vector.
func (c *Cursor) Reset() {
	for i := range c.index {
		c.index[i] = 0
	}
	c.done = false
}
