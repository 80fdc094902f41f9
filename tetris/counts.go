package tetris

import "github.com/kamstrup/intmap"

// ShapeCounts tallies how many pieces of each shape have been spawned.
type ShapeCounts struct {
	m *intmap.Map[Shape, int]
}

func newShapeCounts() ShapeCounts {
	return ShapeCounts{m: intmap.New[Shape, int](len(Shapes))}
}

func (c ShapeCounts) add(s Shape) {
	n, _ := c.m.Get(s)
	c.m.Put(s, n+1)
}

// Get returns the number of spawned pieces of shape s.
func (c ShapeCounts) Get(s Shape) int {
	if c.m == nil {
		return 0
	}
	n, _ := c.m.Get(s)
	return n
}

// Total returns the number of spawned pieces across all shapes.
func (c ShapeCounts) Total() int {
	total := 0
	for _, s := range Shapes {
		total += c.Get(s)
	}
	return total
}

func (c ShapeCounts) clone() ShapeCounts {
	out := newShapeCounts()
	for _, s := range Shapes {
		if n := c.Get(s); n > 0 {
			out.m.Put(s, n)
		}
	}
	return out
}
