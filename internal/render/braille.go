package render

import "strings"

// canvas is a dot-addressable drawing surface backed by Unicode Braille
// cells. Each cell is a 2x4 dot grid, giving 2x horizontal and 4x
// vertical resolution over the character grid.
type canvas struct {
	cols  int
	rows  int
	cells []uint
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

func newCanvas(cols, rows int) *canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &canvas{cols: cols, rows: rows, cells: make([]uint, cols*rows)}
}

func (c *canvas) dotWidth() int  { return c.cols * 2 }
func (c *canvas) dotHeight() int { return c.rows * 4 }

// set turns on the dot at dot coordinates (x, y), origin top-left.
func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.cells[cell] |= 1 << brailleBits[x%2][y%4]
}

// line draws a segment between two dot coordinates with Bresenham's
// algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *canvas) String() string {
	var out strings.Builder
	out.Grow(c.rows * (c.cols + 1) * 3)
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			out.WriteRune(rune(0x2800 + c.cells[row*c.cols+col]))
		}
	}
	return out.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
