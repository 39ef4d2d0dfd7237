package game

import "strings"

// Board is a fixed-size square grid of stones. A cell holds at most one
// color; NoColor marks an empty cell. The board that backs a running match
// is owned by its Logic; rule checks and AI searches work on clones.
type Board struct {
	size  int
	cells []Color
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// At returns the color at (x, y), or NoColor when the cell is empty or out
// of bounds.
func (b *Board) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return NoColor
	}
	return b.cells[b.index(x, y)]
}

func (b *Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.cells[b.index(x, y)] == NoColor
}

// Place puts a stone at (x, y). It reports false without touching the
// board when the cell is out of bounds, occupied, or the color is NoColor.
func (b *Board) Place(x, y int, c Color) bool {
	if c == NoColor || !b.IsEmpty(x, y) {
		return false
	}
	b.cells[b.index(x, y)] = c
	return true
}

// Remove clears the stone at (x, y), reporting false when there is none.
func (b *Board) Remove(x, y int) bool {
	if !b.InBounds(x, y) || b.cells[b.index(x, y)] == NoColor {
		return false
	}
	b.cells[b.index(x, y)] = NoColor
	return true
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = NoColor
	}
}

// Clone returns an independent deep copy. Mutating either board afterwards
// does not affect the other.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:  b.size,
		cells: make([]Color, len(b.cells)),
	}
	copy(clone.cells, b.cells)
	return clone
}

// CopyFrom overwrites this board's contents with another board of the same
// size. Used to commit a validated clone back onto the authoritative board.
func (b *Board) CopyFrom(other *Board) {
	if b.size != other.size {
		panic("cannot copy between boards of different sizes")
	}
	copy(b.cells, other.cells)
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == NoColor {
			count++
		}
	}
	return count
}

func (b *Board) Count(c Color) int {
	count := 0
	for _, cell := range b.cells {
		if cell == c {
			count++
		}
	}
	return count
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			switch b.At(x, y) {
			case Black:
				sb.WriteByte('b')
			case White:
				sb.WriteByte('w')
			default:
				sb.WriteByte('.')
			}
		}
		if y < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) index(x, y int) int {
	return y*b.size + x
}
