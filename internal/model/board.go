package model

import "encoding/json"

// Board is the 8x8 grid of pieces. It owns every piece on it; simulation for
// legality checks always happens on a Clone, never on the live board.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns a board populated with the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.squares[0][col] = &Piece{Kind: kind, Color: ColorBlack, Position: Position{Row: 0, Col: col}}
		b.squares[7][col] = &Piece{Kind: kind, Color: ColorWhite, Position: Position{Row: 7, Col: col}}
	}
	for col := 0; col < 8; col++ {
		b.squares[1][col] = &Piece{Kind: Pawn, Color: ColorBlack, Position: Position{Row: 1, Col: col}}
		b.squares[6][col] = &Piece{Kind: Pawn, Color: ColorWhite, Position: Position{Row: 6, Col: col}}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, for assembling custom
// positions.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Clone returns a structural deep copy: every piece is duplicated into
// independent ownership, so mutating the copy never touches the original.
func (b *Board) Clone() *Board {
	cp := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if piece := b.squares[row][col]; piece != nil {
				dup := *piece
				cp.squares[row][col] = &dup
			}
		}
	}
	return cp
}

// GetPiece returns the occupant of the square, or nil if it is empty.
func (b *Board) GetPiece(pos Position) *Piece {
	return b.squares[pos.Row][pos.Col]
}

// SetPiece places a piece on the square, overwriting any occupant. The
// piece's own position is updated to match; passing nil clears the square.
func (b *Board) SetPiece(pos Position, piece *Piece) {
	if piece != nil {
		piece.Position = pos
	}
	b.squares[pos.Row][pos.Col] = piece
}

// apply moves the occupant of from onto to, dropping any capture. Callers
// are responsible for legality.
func (b *Board) apply(from, to Position) {
	piece := b.squares[from.Row][from.Col]
	b.squares[to.Row][to.Col] = piece
	b.squares[from.Row][from.Col] = nil
	piece.Position = to
}

// MovePiece validates and executes a move. It returns false when the source
// square is empty, the destination is not pseudo-legal for the piece, or the
// move would leave the mover's own king in check. A rejected move leaves the
// board untouched.
func (b *Board) MovePiece(from, to Position) bool {
	piece := b.squares[from.Row][from.Col]
	if piece == nil {
		return false
	}

	legal := false
	for _, move := range piece.ValidMoves(b) {
		if move == to {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}

	// Try the move on a copy first; a side may never make a move that leaves
	// its own king in check, including moving a pinned piece.
	sim := b.Clone()
	sim.apply(from, to)
	if sim.IsKingInCheck(piece.Color) {
		return false
	}

	b.apply(from, to)
	return true
}

// IsKingInCheck reports whether the color's king is attacked by the opponent.
func (b *Board) IsKingInCheck(color Color) bool {
	king := b.findKing(color)
	if king == nil {
		// Structurally impossible on a board produced by this engine.
		return false
	}
	return b.IsPositionUnderAttack(king.Position, color.Opponent())
}

func (b *Board) findKing(color Color) *Piece {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if piece := b.squares[row][col]; piece != nil && piece.Kind == King && piece.Color == color {
				return piece
			}
		}
	}
	return nil
}

// IsPositionUnderAttack reports whether any piece of byColor has a capture
// pattern reaching the square, independent of whose turn it is.
func (b *Board) IsPositionUnderAttack(pos Position, byColor Color) bool {
	return b.attackedByLinePieces(pos, byColor) ||
		b.attackedByKnights(pos, byColor) ||
		b.attackedByPawns(pos, byColor) ||
		b.attackedByKing(pos, byColor)
}

// attackedByLinePieces walks the eight rays outward until a piece is met and
// classifies it: rook or queen on orthogonal rays, bishop or queen on
// diagonals.
func (b *Board) attackedByLinePieces(pos Position, byColor Color) bool {
	for _, dir := range orthogonalDirs {
		if piece := b.firstPieceAlong(pos, dir); piece != nil && piece.Color == byColor && (piece.Kind == Rook || piece.Kind == Queen) {
			return true
		}
	}
	for _, dir := range diagonalDirs {
		if piece := b.firstPieceAlong(pos, dir); piece != nil && piece.Color == byColor && (piece.Kind == Bishop || piece.Kind == Queen) {
			return true
		}
	}
	return false
}

func (b *Board) firstPieceAlong(pos Position, dir Position) *Piece {
	row := pos.Row + dir.Row
	col := pos.Col + dir.Col
	for withinBoard(row, col) {
		if piece := b.squares[row][col]; piece != nil {
			return piece
		}
		row += dir.Row
		col += dir.Col
	}
	return nil
}

func (b *Board) attackedByKnights(pos Position, byColor Color) bool {
	for _, off := range knightOffsets {
		row := pos.Row + off.Row
		col := pos.Col + off.Col
		if !withinBoard(row, col) {
			continue
		}
		if piece := b.squares[row][col]; piece != nil && piece.Kind == Knight && piece.Color == byColor {
			return true
		}
	}
	return false
}

// attackedByPawns checks the two squares from which a byColor pawn could
// capture onto pos: one row opposite the pawn's advance direction, on either
// diagonal.
func (b *Board) attackedByPawns(pos Position, byColor Color) bool {
	rowOffset := 1
	if byColor == ColorBlack {
		rowOffset = -1
	}
	row := pos.Row + rowOffset
	for _, col := range []int{pos.Col - 1, pos.Col + 1} {
		if !withinBoard(row, col) {
			continue
		}
		if piece := b.squares[row][col]; piece != nil && piece.Kind == Pawn && piece.Color == byColor {
			return true
		}
	}
	return false
}

func (b *Board) attackedByKing(pos Position, byColor Color) bool {
	for _, off := range kingOffsets {
		row := pos.Row + off.Row
		col := pos.Col + off.Col
		if !withinBoard(row, col) {
			continue
		}
		if piece := b.squares[row][col]; piece != nil && piece.Kind == King && piece.Color == byColor {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the color is checkmated: in check, with no
// move of any of its pieces that clears the check. Every candidate is tried
// on a fresh board copy, so pinned pieces and king moves are judged against
// the position that would actually result.
func (b *Board) IsCheckmate(color Color) bool {
	if !b.IsKingInCheck(color) {
		return false
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.squares[row][col]
			if piece == nil || piece.Color != color {
				continue
			}
			from := piece.Position
			for _, move := range piece.ValidMoves(b) {
				sim := b.Clone()
				sim.apply(from, move)
				if !sim.IsKingInCheck(color) {
					return false
				}
			}
		}
	}
	return true
}

// MarshalJSON renders the board as an 8x8 array of optional pieces, the
// shape the frontend and CLI client consume.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.squares)
}

// UnmarshalJSON rebuilds a board from its 8x8 JSON representation.
func (b *Board) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.squares)
}
