package scene

import (
	"cogentcore.org/core/math32"
)

// Compose draws one frame of e onto cv: live connectors first, then every
// renderable bin node, then the year nodes, so nodes stay on top of lines.
func Compose(cv *Canvas, e *Engine, cam Camera, pal Palette) {
	cv.Clear()
	w, h := cv.Size()
	if w == 0 || h == 0 {
		return
	}
	at := func(p math32.Vector3) (int, int) {
		x, y := cam.Project(p, w, h)
		return int(math32.Round(x)), int(math32.Round(y))
	}

	for _, c := range e.Connectors() {
		if !c.Visible() {
			continue
		}
		x0, y0 := at(c.Source)
		x1, y1 := at(c.End())
		cv.Line(x0, y0, x1, y1, lineRune, pal.Fade(pal.Connector, c.Opacity))
	}

	focused := -1
	if g, ok := e.Focused(); ok {
		focused = g.Index
	}
	for _, g := range e.Layout().Groups() {
		col := pal.Bin
		if g.Index == focused {
			col = pal.Focused
		}
		// node material is 80% opaque
		col = pal.Fade(col, 0.8)
		for _, b := range g.Bins {
			x, y := at(b.Pos)
			cv.Set(x, y, nodeRune, col)
		}
	}

	yearCol := pal.Fade(pal.Year, 0.8)
	for _, yn := range e.Layout().Years() {
		x, y := at(yn.Pos)
		cv.Set(x, y, nodeRune, yearCol)
	}
}
