package universe

import "strings"

// Glyphs used by Render, one per cell state.
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

// Render draws the board as text: height lines of width glyphs each, rows
// top to bottom, columns left to right, every row terminated by a newline.
func (u *Universe) Render() string {
	var b strings.Builder
	// both glyphs are 3 bytes in UTF-8
	b.Grow(int(u.height * (u.width*3 + 1)))
	for row := uint(0); row < u.height; row++ {
		for col := uint(0); col < u.width; col++ {
			if u.Cell(row, col) {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
