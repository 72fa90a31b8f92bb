package components

import (
	"unicode/utf8"

	"github.com/TheBitDrifter/signet"
	"github.com/gdamore/tcell/v2"
)

// RGBA is a color with 8-bit channels. A zero alpha means "terminal default".
type RGBA struct {
	R uint8 `yaml:"r" toml:"r"`
	G uint8 `yaml:"g" toml:"g"`
	B uint8 `yaml:"b" toml:"b"`
	A uint8 `yaml:"a" toml:"a"`
}

var (
	DefaultForeground = RGBA{255, 255, 255, 255}
	DefaultBackground = RGBA{0, 0, 0, 255}
)

// Color converts c for tcell.
func (c RGBA) Color() tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Canvas is the part of a tcell.Screen that drawing needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Renderable draws an entity as a single glyph.
type Renderable struct {
	signet.Tag `yaml:"-"`
	Glyph      string `yaml:"glyph"`
	Foreground RGBA   `yaml:"foreground,flow"`
	Background RGBA   `yaml:"background,flow"`
}

var _ Drawable = &Renderable{}

func NewRenderable(kind signet.Kind, glyph string, foreground RGBA) *Renderable {
	return &Renderable{
		Tag:        signet.NewTag(kind),
		Glyph:      glyph,
		Foreground: foreground,
		Background: DefaultBackground,
	}
}

// Style is the tcell style the glyph is drawn with.
func (r *Renderable) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(r.Foreground.Color()).
		Background(r.Background.Color())
}

// Rune is the first rune of the glyph, or a space for an empty glyph.
func (r *Renderable) Rune() rune {
	ch, _ := utf8.DecodeRuneInString(r.Glyph)
	if ch == utf8.RuneError {
		return ' '
	}
	return ch
}

// Draw puts the glyph at cell (x, y). Cells outside the canvas are ignored.
func (r *Renderable) Draw(c Canvas, x, y int) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.SetContent(x, y, r.Rune(), nil, r.Style())
}
