package model

// Player is the turn arbiter for one side: an immutable binding of a color
// to the shared board. It filters move requests by ownership of the moving
// piece before delegating to the board.
type Player struct {
	color Color
	board *Board
}

func NewPlayer(color Color, board *Board) *Player {
	return &Player{color: color, board: board}
}

func (p *Player) Color() Color {
	return p.color
}

// MakeMove executes the move if the piece at from belongs to this player and
// the move is legal on the board.
func (p *Player) MakeMove(from, to Position) bool {
	piece := p.board.GetPiece(from)
	if piece == nil || piece.Color != p.color {
		return false
	}
	return p.board.MovePiece(from, to)
}

// ClientPlayer is the network identity of a seated player as rendered in the
// broadcast game state.
type ClientPlayer struct {
	ID       string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}
