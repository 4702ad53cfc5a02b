package scene

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/andareed/census-timeline/config"
)

const (
	nodeRune = '●'
	lineRune = '·'
)

// Palette is the parsed form of config.Palette.
type Palette struct {
	Background colorful.Color
	Year       colorful.Color
	Bin        colorful.Color
	Focused    colorful.Color
	Connector  colorful.Color
}

func ParsePalette(p config.Palette) (Palette, error) {
	var out Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"background", p.Background, &out.Background},
		{"year", p.Year, &out.Year},
		{"bin", p.Bin, &out.Bin},
		{"focused", p.Focused, &out.Focused},
		{"connector", p.Connector, &out.Connector},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// Fade blends c into the background by opacity, the terminal stand-in for a
// transparent material.
func (p Palette) Fade(c colorful.Color, opacity float32) colorful.Color {
	return p.Background.BlendRgb(c, float64(opacity)).Clamped()
}

type cell struct {
	r   rune
	hex string
}

// Canvas is a grid of coloured runes. The zero cell is blank.
type Canvas struct {
	w, h  int
	cells []cell
	bg    string
}

func NewCanvas(w, h int, bg colorful.Color) *Canvas {
	c := &Canvas{bg: bg.Hex()}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.w, c.h = w, h
	if cap(c.cells) >= w*h {
		c.cells = c.cells[:w*h]
	} else {
		c.cells = make([]cell, w*h)
	}
	c.Clear()
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear() { clear(c.cells) }

// Set writes r at (x, y). Points outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune, col colorful.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, hex: col.Hex()}
}

// At returns the rune at (x, y), or 0 when blank or out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, r rune, col colorful.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, r, col)
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

// Render styles runs of equally coloured cells in one lipgloss call each.
func (c *Canvas) Render() string {
	bg := lipgloss.Color(c.bg)
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			hex := row[x].hex
			var run strings.Builder
			for ; x < len(row) && row[x].hex == hex; x++ {
				if row[x].r == 0 {
					run.WriteByte(' ')
				} else {
					run.WriteRune(row[x].r)
				}
			}
			st := lipgloss.NewStyle().Background(bg)
			if hex != "" {
				st = st.Foreground(lipgloss.Color(hex))
			}
			sb.WriteString(st.Render(run.String()))
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String is the uncoloured canvas, used by tests and headless dumps.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if r := c.cells[y*c.w+x].r; r != 0 {
				sb.WriteRune(r)
			} else {
				sb.WriteByte(' ')
			}
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
