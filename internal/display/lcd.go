// Package display models the 2x16 character LCD used for status output.
package display

import (
	"strings"
	"sync"
)

// Geometry of the character display.
const (
	Rows    = 2
	Columns = 16
)

// DecMode selects padding for WriteDecWord.
type DecMode uint8

const (
	// DecLeadingZeros pads with '0'.
	DecLeadingZeros DecMode = iota
	// DecLeadingSpaces pads with ' '.
	DecLeadingSpaces
)

const hexDigits = "0123456789ABCDEF"

// CharLCD is an in-memory character display with a cursor.
// Rows and columns are 1-based like the panel legend. Writes past the last
// column are dropped.
type CharLCD struct {
	cells [Rows][Columns]byte
	row   int
	col   int
	mu    sync.Mutex
}

// NewCharLCD returns a blank display with the cursor at (1,1).
func NewCharLCD() *CharLCD {
	d := new(CharLCD)
	d.Clear()

	return d
}

// Clear blanks the display and homes the cursor.
func (d *CharLCD) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for r := range d.cells {
		d.blank(r)
	}

	d.row, d.col = 0, 0
}

// ClearLine blanks row and moves the cursor to its first column.
func (d *CharLCD) ClearLine(row int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r := clampRow(row)
	d.blank(r)
	d.row, d.col = r, 0
}

// MoveCursor positions the cursor.
func (d *CharLCD) MoveCursor(row, col int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.row = clampRow(row)

	switch {
	case col < 1:
		d.col = 0
	case col > Columns:
		d.col = Columns
	default:
		d.col = col - 1
	}
}

// WriteChar writes one character at the cursor.
func (d *CharLCD) WriteChar(c byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.put(c)
}

// WriteString writes s at the cursor.
func (d *CharLCD) WriteString(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i < len(s); i++ {
		d.put(s[i])
	}
}

// WriteHexWord writes the low nibbles of value as upper-case hex digits.
func (d *CharLCD) WriteHexWord(value uint32, nibbles int) {
	d.WriteString(HexWord(value, nibbles))
}

// WriteDecWord writes value right-aligned in a field of the given width.
func (d *CharLCD) WriteDecWord(value uint32, field int, mode DecMode) {
	d.WriteString(DecWord(value, field, mode))
}

// Lines returns the two rows as strings.
func (d *CharLCD) Lines() [Rows]string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var lines [Rows]string
	for r := range d.cells {
		lines[r] = string(d.cells[r][:])
	}

	return lines
}

// Line returns one row with trailing blanks removed.
func (d *CharLCD) Line(row int) string {
	return strings.TrimRight(d.Lines()[clampRow(row)], " ")
}

func (d *CharLCD) put(c byte) {
	if d.col >= Columns {
		return
	}

	d.cells[d.row][d.col] = c
	d.col++
}

func (d *CharLCD) blank(r int) {
	for c := range d.cells[r] {
		d.cells[r][c] = ' '
	}
}

func clampRow(row int) int {
	switch {
	case row <= 1:
		return 0
	case row >= Rows:
		return Rows - 1
	default:
		return row - 1
	}
}
