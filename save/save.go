// Package save serializes match snapshots to a small JSON envelope. The
// board travels as one row string per rank, a stone per character, which
// keeps the files diffable and hand-editable.
package save

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"stones/game"
)

// Envelope is the on-disk layout of one saved match.
type Envelope struct {
	GameType        string    `json:"game_type"`
	BoardSize       int       `json:"board_size"`
	CurrentPlayer   string    `json:"current_player"`
	PassCount       int       `json:"pass_count"`
	CapturedByBlack int       `json:"captured_by_black"`
	CapturedByWhite int       `json:"captured_by_white"`
	Board           []string  `json:"board"`
	SavedAt         time.Time `json:"saved_at"`
}

// FromMemento packs a snapshot into an envelope, stamping it with now.
func FromMemento(m game.Memento) Envelope {
	b := m.Board()
	return Envelope{
		GameType:        m.GameType(),
		BoardSize:       b.Size(),
		CurrentPlayer:   m.CurrentPlayer().String(),
		PassCount:       m.PassCount(),
		CapturedByBlack: m.CapturedByBlack(),
		CapturedByWhite: m.CapturedByWhite(),
		Board:           boardRows(b),
		SavedAt:         time.Now().UTC(),
	}
}

// Memento validates the envelope and rebuilds the snapshot it carries.
func (e Envelope) Memento() (game.Memento, error) {
	if e.BoardSize <= 0 {
		return game.Memento{}, fmt.Errorf("invalid board size %d", e.BoardSize)
	}
	current, err := game.ParseColor(e.CurrentPlayer)
	if err != nil {
		return game.Memento{}, fmt.Errorf("current player: %w", err)
	}
	b, err := parseRows(e.BoardSize, e.Board)
	if err != nil {
		return game.Memento{}, err
	}
	return game.NewMemento(e.GameType, b, current, e.PassCount, e.CapturedByBlack, e.CapturedByWhite), nil
}

// Encode writes the snapshot as indented JSON.
func Encode(w io.Writer, m game.Memento) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromMemento(m))
}

// Decode reads an envelope and rebuilds the snapshot.
func Decode(r io.Reader) (game.Memento, error) {
	var e Envelope
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return game.Memento{}, fmt.Errorf("decoding save: %w", err)
	}
	return e.Memento()
}

// WriteFile saves the snapshot to path, truncating any previous save.
func WriteFile(path string, m game.Memento) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing save file: %w", err)
	}
	return f.Close()
}

// ReadFile loads a snapshot from path.
func ReadFile(path string) (game.Memento, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.Memento{}, fmt.Errorf("opening save file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func boardRows(b *game.Board) []string {
	return strings.Split(b.String(), "\n")
}

func parseRows(size int, rows []string) (*game.Board, error) {
	if len(rows) != size {
		return nil, fmt.Errorf("expected %d board rows, got %d", size, len(rows))
	}
	b := game.NewBoard(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", y, size, len(row))
		}
		for x := 0; x < size; x++ {
			switch row[x] {
			case 'b':
				b.Place(x, y, game.Black)
			case 'w':
				b.Place(x, y, game.White)
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unknown cell %q", y, row[x])
			}
		}
	}
	return b, nil
}
