package model

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate falls outside the 8x8 board.
var ErrOutOfRange = errors.New("position out of range")

// Position identifies one of the 64 board squares. Row 0 is black's back
// rank, row 7 is white's; column 0 is the a-file. Positions compare by value.
type Position struct {
	Row int `json:"row" validate:"min=0,max=7"`
	Col int `json:"col" validate:"min=0,max=7"`
}

// NewPosition builds a Position, rejecting coordinates outside [0,7].
func NewPosition(row, col int) (Position, error) {
	if !withinBoard(row, col) {
		return Position{}, fmt.Errorf("%w: row %d, col %d", ErrOutOfRange, row, col)
	}
	return Position{Row: row, Col: col}, nil
}

// ParseSquare converts algebraic notation like "e2" into a Position.
func ParseSquare(square string) (Position, error) {
	if len(square) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfRange, square)
	}
	file := square[0]
	rank := square[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfRange, square)
	}
	return Position{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Notation renders the position in algebraic notation.
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, 8-p.Row)
}

func withinBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}
