package core

import "math"

// Shape identifies the primitive a DrawCommand describes.
type Shape uint8

const (
	ShapeRect     Shape = iota // X, Y top-left; W, H size
	ShapeCircle                // X, Y center; R radius
	ShapeTriangle              // X, Y center; W, H size; Rotation in radians, 0 points up
	ShapeLine                  // X, Y start; W, H delta to the end point
	ShapeText                  // X, Y top-left of the text
)

// DrawCommand is an abstract render primitive in world coordinates.
// Games emit a batch of these each tick; they carry no terminal state.
type DrawCommand struct {
	Shape    Shape
	X, Y     float64
	W, H     float64
	R        float64
	Rotation float64
	Color    Color
	Alpha    float64 // 0 is invisible, 1 is opaque
	Glyph    rune    // 0 selects the shape's default glyph
	Text     string
}

// RectCmd returns an opaque rectangle command.
func RectCmd(x, y, w, h float64, c Color) DrawCommand {
	return DrawCommand{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c, Alpha: 1}
}

// CircleCmd returns an opaque circle command.
func CircleCmd(cx, cy, r float64, c Color) DrawCommand {
	return DrawCommand{Shape: ShapeCircle, X: cx, Y: cy, R: r, Color: c, Alpha: 1}
}

// TriangleCmd returns an opaque triangle centered at (cx, cy).
func TriangleCmd(cx, cy, w, h, rotation float64, c Color) DrawCommand {
	return DrawCommand{Shape: ShapeTriangle, X: cx, Y: cy, W: w, H: h, Rotation: rotation, Color: c, Alpha: 1}
}

// LineCmd returns an opaque line from (x0, y0) to (x1, y1).
func LineCmd(x0, y0, x1, y1 float64, c Color) DrawCommand {
	return DrawCommand{Shape: ShapeLine, X: x0, Y: y0, W: x1 - x0, H: y1 - y0, Color: c, Alpha: 1}
}

// TextCmd returns an opaque text command.
func TextCmd(x, y float64, text string, c Color) DrawCommand {
	return DrawCommand{Shape: ShapeText, X: x, Y: y, Text: text, Color: c, Alpha: 1}
}

// Rasterize draws commands in order onto the screen, scaling a world of
// worldW x worldH units to the full buffer. Later commands paint over earlier ones.
func (s *Screen) Rasterize(cmds []DrawCommand, worldW, worldH float64) {
	if worldW <= 0 || worldH <= 0 || s.width == 0 || s.height == 0 {
		return
	}
	r := raster{s: s, sx: float64(s.width) / worldW, sy: float64(s.height) / worldH}
	for _, c := range cmds {
		if c.Alpha <= 0 {
			continue
		}
		switch c.Shape {
		case ShapeRect:
			r.rect(c)
		case ShapeCircle:
			r.circle(c)
		case ShapeTriangle:
			r.triangle(c)
		case ShapeLine:
			r.line(c)
		case ShapeText:
			s.DrawTextColored(int(math.Floor(c.X*r.sx)), int(math.Floor(c.Y*r.sy)), c.Text, c.Color)
		}
	}
}

type raster struct {
	s      *Screen
	sx, sy float64
}

// shade swaps the glyph for a lighter one as alpha drops.
func shade(g rune, alpha float64) rune {
	switch {
	case alpha >= 0.7:
		return g
	case alpha >= 0.35:
		return ':'
	default:
		return '.'
	}
}

func glyphOr(g, def rune) rune {
	if g != 0 {
		return g
	}
	return def
}

// span converts a world interval to a cell interval that is never empty.
func span(lo, size, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil((lo + size) * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (r raster) rect(c DrawCommand) {
	g := shade(glyphOr(c.Glyph, '█'), c.Alpha)
	x0, x1 := span(c.X, c.W, r.sx)
	y0, y1 := span(c.Y, c.H, r.sy)
	r.s.FillRect(Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, g, c.Color)
}

func (r raster) circle(c DrawCommand) {
	g := shade(glyphOr(c.Glyph, '●'), c.Alpha)
	x0, x1 := span(c.X-c.R, 2*c.R, r.sx)
	y0, y1 := span(c.Y-c.R, 2*c.R, r.sy)
	hit := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)/r.sx - c.X
			dy := (float64(y)+0.5)/r.sy - c.Y
			if dx*dx+dy*dy <= c.R*c.R {
				r.s.SetColored(x, y, g, c.Color)
				hit = true
			}
		}
	}
	if !hit {
		r.s.SetColored(int(math.Floor(c.X*r.sx)), int(math.Floor(c.Y*r.sy)), g, c.Color)
	}
}

// triangleGlyph picks an arrow that matches the rotation to the nearest quarter turn.
func triangleGlyph(rotation float64) rune {
	q := int(math.Round(rotation/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return [4]rune{'▲', '▶', '▼', '◀'}[q]
}

func (r raster) triangle(c DrawCommand) {
	g := shade(glyphOr(c.Glyph, triangleGlyph(c.Rotation)), c.Alpha)
	ext := math.Max(c.W, c.H) / 2
	x0, x1 := span(c.X-ext, 2*ext, r.sx)
	y0, y1 := span(c.Y-ext, 2*ext, r.sy)
	sin, cos := math.Sincos(-c.Rotation)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := (float64(x)+0.5)/r.sx - c.X
			py := (float64(y)+0.5)/r.sy - c.Y
			// Undo the rotation, then test against an upward triangle.
			lx := px*cos - py*sin
			ly := px*sin + py*cos
			t := (ly + c.H/2) / c.H
			if t >= 0 && t <= 1 && math.Abs(lx) <= t*c.W/2 {
				r.s.SetColored(x, y, g, c.Color)
			}
		}
	}
	r.s.SetColored(int(math.Floor(c.X*r.sx)), int(math.Floor(c.Y*r.sy)), g, c.Color)
}

func (r raster) line(c DrawCommand) {
	g := shade(glyphOr(c.Glyph, '·'), c.Alpha)
	x0, y0 := c.X*r.sx, c.Y*r.sy
	dx, dy := c.W*r.sx, c.H*r.sy
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.s.SetColored(int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t)), g, c.Color)
	}
}
