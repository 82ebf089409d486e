package display

import (
	"fmt"
	"strings"

	"chesscore/internal/model"
)

var kindLetters = map[model.PieceKind]byte{
	model.King:   'K',
	model.Queen:  'Q',
	model.Rook:   'R',
	model.Bishop: 'B',
	model.Knight: 'N',
	model.Pawn:   'P',
}

// RenderState prints the board with rank and file labels, white pieces in
// blue and black pieces in red, followed by the turn and result lines.
func RenderState(state model.GameState) {
	fmt.Printf("%s  a b c d e f g h%s\n", Cyan, Reset)
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s%d%s ", Cyan, 8-row, Reset))
		for col := 0; col < 8; col++ {
			pos := model.Position{Row: row, Col: col}
			piece := state.Board.GetPiece(pos)
			if piece == nil {
				sb.WriteString(". ")
				continue
			}
			color := Blue
			if piece.Color == model.ColorBlack {
				color = Red
			}
			sb.WriteString(fmt.Sprintf("%s%c%s ", color, kindLetters[piece.Kind], Reset))
		}
		sb.WriteString(fmt.Sprintf("%s%d%s", Cyan, 8-row, Reset))
		fmt.Println(sb.String())
	}
	fmt.Printf("%s  a b c d e f g h%s\n", Cyan, Reset)

	if state.Result != nil {
		fmt.Printf("%sCheckmate! %s wins.%s\n", Green, state.Result.Winner, Reset)
		return
	}
	check := ""
	if state.IsCheck {
		check = " (check)"
	}
	fmt.Printf("Turn: %s%s\n", ColorForTurn(state.ToMove), check)
}

// ColorForTurn returns a colored side name.
func ColorForTurn(turn model.Color) string {
	if turn == model.ColorWhite {
		return Blue + "White" + Reset
	}
	return Red + "Black" + Reset
}
