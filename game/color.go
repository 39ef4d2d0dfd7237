package game

import "fmt"

// Color is a stone color. The zero value means an empty cell, so a board
// cell is the color itself rather than a pointer per placement.
type Color uint8

const (
	NoColor Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return NoColor, fmt.Errorf("unknown color %q", s)
	}
}

// Outcome is the result of a finished game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeBlack
	OutcomeWhite
	OutcomeDraw
)

// WinnerOf maps a winning color to its outcome.
func WinnerOf(c Color) Outcome {
	switch c {
	case Black:
		return OutcomeBlack
	case White:
		return OutcomeWhite
	default:
		return OutcomeNone
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeBlack:
		return "black"
	case OutcomeWhite:
		return "white"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Move is a board coordinate pair.
type Move struct {
	X int
	Y int
}
