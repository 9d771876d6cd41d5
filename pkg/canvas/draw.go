package canvas

import "image"

// DrawGrid fills the buffer with grid dots ('·') at regular intervals,
// offset by camera position. Points where (worldX % spacingX == 0) and
// (worldY % spacingY == 0) get a dot.
func DrawGrid(buf *Buffer, camX, camY, spacingX, spacingY int, style StyleKey) {
	for r := 0; r < buf.H; r++ {
		wy := r + camY
		if mod(wy, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			wx := c + camX
			if mod(wx, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// DrawPolyline draws an orthogonal polyline through the given buffer-local
// waypoints using box-drawing runes, with corner joins where the
// direction changes and an arrowhead at the final point. When dashed is
// true every third cell of the stroke is skipped (the arrowhead never
// is). Diagonal segments are clipped to their dominant axis; routed
// paths never produce them.
func DrawPolyline(buf *Buffer, pts []image.Point, dashed bool, lineStyle, arrowStyle StyleKey) {
	cells := polylineCells(pts)
	if len(cells) == 0 {
		return
	}

	for i, c := range cells[:len(cells)-1] {
		if dashed && i%3 == 2 {
			continue
		}
		buf.Set(c.pt.X, c.pt.Y, c.ch, lineStyle)
	}

	last := cells[len(cells)-1]
	var dir image.Point
	if len(cells) >= 2 {
		prev := cells[len(cells)-2]
		dir = image.Pt(last.pt.X-prev.pt.X, last.pt.Y-prev.pt.Y)
	}
	buf.Set(last.pt.X, last.pt.Y, ArrowRune(dir.X, dir.Y), arrowStyle)
}

// DrawDashedLine draws a free-angle dashed line (every third cell
// skipped). Used for the connect-mode preview from the pending anchor to
// the pointer.
func DrawDashedLine(buf *Buffer, x0, y0, x1, y1 int, style StyleKey) {
	pts := lineCells(x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 == 2 {
			continue
		}
		var dx, dy int
		if i+1 < len(pts) {
			dx, dy = pts[i+1].X-p.X, pts[i+1].Y-p.Y
		} else if i > 0 {
			dx, dy = p.X-pts[i-1].X, p.Y-pts[i-1].Y
		}
		buf.Set(p.X, p.Y, lineRune(dx, dy), style)
	}
}

// strokeCell is one cell of a rasterized polyline.
type strokeCell struct {
	pt image.Point
	ch rune
}

// polylineCells rasterizes the waypoints into cells with per-cell runes:
// straight runs get │ or ─, direction changes get the matching corner.
func polylineCells(pts []image.Point) []strokeCell {
	var path []image.Point
	for i := 0; i+1 < len(pts); i++ {
		seg := lineCells(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		if len(path) > 0 && len(seg) > 0 && path[len(path)-1] == seg[0] {
			seg = seg[1:]
		}
		path = append(path, seg...)
	}
	if len(path) == 0 && len(pts) == 1 {
		path = pts
	}

	cells := make([]strokeCell, len(path))
	for i, p := range path {
		var din, dout image.Point
		if i > 0 {
			din = image.Pt(p.X-path[i-1].X, p.Y-path[i-1].Y)
		}
		if i+1 < len(path) {
			dout = image.Pt(path[i+1].X-p.X, path[i+1].Y-p.Y)
		}
		cells[i] = strokeCell{pt: p, ch: jointRune(din, dout)}
	}
	return cells
}

// jointRune picks the rune for a cell given its incoming and outgoing
// directions.
func jointRune(din, dout image.Point) rune {
	if din == (image.Point{}) {
		din = dout
	}
	if dout == (image.Point{}) {
		dout = din
	}
	if din.X != 0 && dout.X != 0 {
		return '─'
	}
	if din.Y != 0 && dout.Y != 0 {
		return '│'
	}
	// Corner: one direction horizontal, the other vertical.
	switch {
	case din.X > 0 && dout.Y > 0, din.Y < 0 && dout.X < 0:
		return '┐'
	case din.X > 0 && dout.Y < 0, din.Y > 0 && dout.X < 0:
		return '┘'
	case din.X < 0 && dout.Y > 0, din.Y < 0 && dout.X > 0:
		return '┌'
	case din.X < 0 && dout.Y < 0, din.Y > 0 && dout.X > 0:
		return '└'
	}
	return lineRune(dout.X, dout.Y)
}

// lineRune returns the stroke character for a segment direction.
func lineRune(dx, dy int) rune {
	if dx == 0 {
		return '│'
	}
	if dy == 0 {
		return '─'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// ArrowRune returns an arrowhead pointing in the dominant direction of
// (dx, dy).
func ArrowRune(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx < 0 {
		return '◄'
	}
	return '►'
}

// lineCells returns the integer cells on the line from (x0,y0) to
// (x1,y1) using Bresenham's algorithm, both endpoints included. The loop
// is capped to prevent runaway iteration.
func lineCells(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// mod returns a non-negative modulus (Go's % can return negative for
// negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
