package directory

// Cursor tracks which position of the current view, if any, is open in the
// detail dialog. The zero value is closed. A cursor holds a position, never a
// record, and is re-resolved against the view each time it is rendered.
type Cursor struct {
	open     bool
	position int
}

// Position returns the open position and whether the cursor is open.
func (c Cursor) Position() (int, bool) {
	return c.position, c.open
}

// IsOpen reports whether a detail view is open.
func (c Cursor) IsOpen() bool {
	return c.open
}

// Select opens the cursor at i for a view of length n. Out-of-range positions
// and empty views are ignored and leave the cursor unchanged.
func (c *Cursor) Select(i, n int) bool {
	if n <= 0 || i < 0 || i >= n {
		return false
	}
	c.open = true
	c.position = i
	return true
}

// Close closes the cursor.
func (c *Cursor) Close() {
	c.open = false
	c.position = 0
}

// Next advances one position with wraparound. An empty view closes the cursor.
func (c *Cursor) Next(n int) {
	c.step(1, n)
}

// Prev moves back one position with wraparound. An empty view closes the cursor.
func (c *Cursor) Prev(n int) {
	c.step(-1, n)
}

func (c *Cursor) step(delta, n int) {
	if !c.open {
		return
	}
	if n <= 0 {
		c.Close()
		return
	}
	c.position = ((c.position+delta)%n + n) % n
}

// Rebind re-resolves an open cursor against a replaced view of length n. The
// position is kept as-is; it is not re-anchored to the record it showed
// before. Positions past the end of the new view close the cursor.
func (c *Cursor) Rebind(n int) {
	if !c.open {
		return
	}
	if c.position >= n {
		c.Close()
	}
}
