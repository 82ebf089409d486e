package model

import (
	"errors"
	"fmt"
)

// Color is the side a piece belongs to.
type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// PieceKind discriminates the six piece variants. Movement and attacker
// classification switch over this value.
type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Rook   PieceKind = "rook"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

func (k PieceKind) Notation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// ErrInvalidPiece is returned when a piece is constructed with an unknown
// kind or color.
var ErrInvalidPiece = errors.New("invalid piece")

// Piece is a single chessman. Color never changes after construction; the
// position is updated on every committed move.
type Piece struct {
	Kind     PieceKind `json:"kind"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
}

// NewPiece constructs a piece, rejecting absent or unknown kinds and colors.
func NewPiece(kind PieceKind, color Color, pos Position) (*Piece, error) {
	switch kind {
	case Pawn, Knight, Bishop, Rook, Queen, King:
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidPiece, kind)
	}
	if color != ColorWhite && color != ColorBlack {
		return nil, fmt.Errorf("%w: color %q", ErrInvalidPiece, color)
	}
	return &Piece{Kind: kind, Color: color, Position: pos}, nil
}

// Movement offset tables shared by move generation and attack detection.
var (
	orthogonalDirs = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	diagonalDirs   = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	knightOffsets  = []Position{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
	kingOffsets    = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
)

// ValidMoves computes the pseudo-legal destinations for the piece: squares
// reachable by its movement geometry that are not occupied by a same-color
// piece. Whether a move leaves the mover's own king in check is filtered one
// layer up, in Board.
func (p *Piece) ValidMoves(b *Board) []Position {
	switch p.Kind {
	case Pawn:
		return p.pawnMoves(b)
	case Knight:
		return p.offsetMoves(b, knightOffsets)
	case Bishop:
		return p.rayMoves(b, diagonalDirs)
	case Rook:
		return p.rayMoves(b, orthogonalDirs)
	case Queen:
		return append(p.rayMoves(b, diagonalDirs), p.rayMoves(b, orthogonalDirs)...)
	case King:
		// The king uses plain adjacency here; stepping into an attacked
		// square is rejected by the same simulate-and-check filter that
		// covers every other piece.
		return p.offsetMoves(b, kingOffsets)
	}
	return nil
}

func (p *Piece) pawnMoves(b *Board) []Position {
	moves := []Position{}
	dir := -1
	homeRow := 6
	if p.Color == ColorBlack {
		dir = 1
		homeRow = 1
	}

	row, col := p.Position.Row, p.Position.Col

	// Forward one, and two from the home row, both only onto empty squares.
	if withinBoard(row+dir, col) && b.squares[row+dir][col] == nil {
		moves = append(moves, Position{Row: row + dir, Col: col})
		if row == homeRow && b.squares[row+2*dir][col] == nil {
			moves = append(moves, Position{Row: row + 2*dir, Col: col})
		}
	}

	// Diagonal captures.
	for _, dc := range []int{-1, 1} {
		if !withinBoard(row+dir, col+dc) {
			continue
		}
		if target := b.squares[row+dir][col+dc]; target != nil && target.Color != p.Color {
			moves = append(moves, Position{Row: row + dir, Col: col + dc})
		}
	}
	return moves
}

func (p *Piece) offsetMoves(b *Board, offsets []Position) []Position {
	moves := []Position{}
	for _, off := range offsets {
		row := p.Position.Row + off.Row
		col := p.Position.Col + off.Col
		if !withinBoard(row, col) {
			continue
		}
		if target := b.squares[row][col]; target == nil || target.Color != p.Color {
			moves = append(moves, Position{Row: row, Col: col})
		}
	}
	return moves
}

// rayMoves walks each direction outward, collecting empty squares, including
// the first opposite-color occupant, and stopping short of same-color pieces.
func (p *Piece) rayMoves(b *Board, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		row := p.Position.Row + dir.Row
		col := p.Position.Col + dir.Col
		for withinBoard(row, col) {
			target := b.squares[row][col]
			if target == nil {
				moves = append(moves, Position{Row: row, Col: col})
				row += dir.Row
				col += dir.Col
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Position{Row: row, Col: col})
			}
			break
		}
	}
	return moves
}
