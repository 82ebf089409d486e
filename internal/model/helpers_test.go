package model

import (
	"sort"
	"testing"
)

func mustPos(t *testing.T, square string) Position {
	t.Helper()
	pos, err := ParseSquare(square)
	if err != nil {
		t.Fatalf("parse square %q: %v", square, err)
	}
	return pos
}

func place(t *testing.T, b *Board, kind PieceKind, color Color, square string) *Piece {
	t.Helper()
	pos := mustPos(t, square)
	piece, err := NewPiece(kind, color, pos)
	if err != nil {
		t.Fatalf("new piece: %v", err)
	}
	b.SetPiece(pos, piece)
	return piece
}

// moveSquares renders a move list as sorted algebraic squares for readable
// diffs.
func moveSquares(moves []Position) []string {
	squares := make([]string, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.Notation())
	}
	sort.Strings(squares)
	return squares
}

// grid exposes the occupancy array for before/after comparisons.
func grid(b *Board) [8][8]*Piece {
	return b.squares
}
