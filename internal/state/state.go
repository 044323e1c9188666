// Package state holds the description of a board: its size, the points on it and the
// color of the stone (if any) on each point.
package state

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

var _ = fmt.Printf

// Color of a point on the board: either Empty or the color of the stone there.
type Color uint8

const (
	Empty Color = iota
	Black
	White

	// NumColors includes Empty.
	NumColors = 3
)

var (
	// ColorNames indexed by Color.
	ColorNames = [NumColors]string{"Empty", "Black", "White"}

	// ColorChars are the characters used in layouts and by default when printing boards.
	// They are easy to tell apart at a glance.
	ColorChars = [NumColors]byte{'.', '#', 'o'}

	// StoneChars are the characters used in stone notation. Empty is never a valid stone.
	StoneChars = [NumColors]byte{'-', 'b', 'w'}

	// Stones enumerates the colors of stones, skipping Empty.
	Stones = [2]Color{Black, White}
)

// BoardLetters are the letters marked on top of the board. "I" is left
// out to avoid confusion with "1".
const BoardLetters = "ABCDEFGHJKLMNOPQRST"

// String returns the color name.
func (c Color) String() string {
	if int(c) >= NumColors {
		return fmt.Sprintf("Color(%d)", c)
	}
	return ColorNames[c]
}

// IsStone returns whether c is the color of a stone (Black or White).
func (c Color) IsStone() bool {
	return c == Black || c == White
}

// Opponent returns the color of the other player. Empty has no opponent, and Empty is returned.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Point on the board, where a stone can be placed.
// X goes left to right, Y goes bottom to top, both starting at 0.
type Point struct {
	X, Y int
}

// String returns a text representation of Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ComparePoints orders points by x first and then y, the same order used by Grid.Points.
func ComparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

// Size of a board.
type Size struct {
	Width, Height int
}

// String returns the size formatted as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a size formatted as "WxH" (e.g.: "9x11"), or a single number "N" for a square board.
func ParseSize(text string) (size Size, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(text)), "x", 2)
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	dims := [2]int{}
	for ii, part := range parts {
		dims[ii], err = strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			err = errors.Wrapf(err, "failed to parse board size %q", text)
			return
		}
	}
	size = Size{Width: dims[0], Height: dims[1]}
	return
}

// IsInside returns whether the point is within the board limits.
func (s Size) IsInside(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Area is the number of points in a board of this size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Stone placed on a point of the board.
type Stone struct {
	Point
	Color
}

// String formats the stone in stone notation: column letter, row number (starting from 1)
// and color ("b" or "w"), e.g.: "C4b".
func (s Stone) String() string {
	colorChar := byte('?')
	if int(s.Color) < NumColors {
		colorChar = StoneChars[s.Color]
	}
	if s.X < 0 || s.X >= len(BoardLetters) {
		return fmt.Sprintf("%s%c", s.Point, colorChar)
	}
	return fmt.Sprintf("%c%d%c", BoardLetters[s.X], s.Y+1, colorChar)
}

// ParseStone parses a stone in stone notation (see Stone.String), case-insensitive.
// It returns an error wrapping ErrInvalidStone if the text can't be parsed.
func ParseStone(text string) (stone Stone, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 3 {
		err = errors.Wrapf(ErrInvalidStone, "%q is too short", text)
		return
	}
	stone.X = strings.IndexByte(BoardLetters, text[0])
	if stone.X < 0 {
		err = errors.Wrapf(ErrInvalidStone, "unknown column letter %q in %q", text[0], text)
		return
	}
	switch text[len(text)-1] {
	case 'B':
		stone.Color = Black
	case 'W':
		stone.Color = White
	default:
		err = errors.Wrapf(ErrInvalidStone, "unknown color %q in %q, it must be 'b' or 'w'", text[len(text)-1], text)
		return
	}
	row, parseErr := strconv.Atoi(text[1 : len(text)-1])
	if parseErr != nil || row < 1 {
		err = errors.Wrapf(ErrInvalidStone, "invalid row number %q in %q", text[1:len(text)-1], text)
		return
	}
	stone.Y = row - 1
	return
}

// ParseStones parses a list of stones separated by commas and/or spaces.
func ParseStones(text string) (stones []Stone, err error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	stones = make([]Stone, 0, len(fields))
	for _, field := range fields {
		var stone Stone
		stone, err = ParseStone(field)
		if err != nil {
			return nil, err
		}
		stones = append(stones, stone)
	}
	return
}
