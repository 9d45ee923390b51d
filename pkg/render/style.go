package render

import (
	"unicode/utf8"

	"github.com/matzehuels/sprawl/pkg/errors"
)

// Style holds the glyph groups used to draw one cell.
// All three groups must have the same non-zero width in runes.
type Style struct {
	Top    string // upper half of an unoccupied cell
	Bottom string // lower half of an unoccupied cell
	Blank  string // both halves of an occupied cell
}

// GlyphWidth is the width in runes of every glyph group in the printed image.
const GlyphWidth = 4

// Brick is the default two-row brick motif.
var Brick = Style{
	Top:    "▐▀▀▌",
	Bottom: "▐▄▄▌",
	Blank:  "    ",
}

// Width returns the number of runes in one glyph group.
func (s Style) Width() int {
	return utf8.RuneCountInString(s.Blank)
}

// Validate checks that every glyph group has the same non-zero width.
func (s Style) Validate() error {
	w := s.Width()
	if w == 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "blank glyph group is empty")
	}
	groups := []struct{ name, glyph string }{
		{"top", s.Top},
		{"bottom", s.Bottom},
	}
	for _, g := range groups {
		if n := utf8.RuneCountInString(g.glyph); n != w {
			return errors.New(errors.ErrCodeInvalidStyle, "%s glyph group %q is %d wide, blank is %d", g.name, g.glyph, n, w)
		}
	}
	return nil
}
