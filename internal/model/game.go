package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"chesscore/internal/ws"

	"github.com/gofiber/websocket/v2"
)

// Move rejection reasons surfaced by the match controller. The board itself
// reports rejection as a bare boolean; these let the transport layers tell
// callers why a request failed.
var (
	ErrGameOver    = errors.New("game is over")
	ErrNoPiece     = errors.New("no piece at source square")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotInGame   = errors.New("player not in game")
	ErrGameFull    = errors.New("game is full")
)

const initialClockTime = 600 * time.Second

// GameConnections holds the live websocket connections for one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// GameResult is the terminal outcome of a finished game.
type GameResult struct {
	Winner Color  `json:"winner"`
	Reason string `json:"reason"`
}

// GamePlayers are the two seats of a game as shown to clients.
type GamePlayers struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// CapturedPieces lists, per color, the pieces of that color removed from the
// board.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// GameState is the snapshot broadcast to clients after every state change.
type GameState struct {
	Board          *Board         `json:"board"`
	ToMove         Color          `json:"toMove"`
	IsCheck        bool           `json:"isCheck"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *SimpleMove    `json:"lastMove"`
	Result         *GameResult    `json:"result"`
	Players        GamePlayers    `json:"players"`
}

// Game is the match controller: it owns the authoritative board and the two
// turn arbiters, sequences turns, and evaluates checkmate after each commit.
// Once a checkmate is found the game enters a terminal state and every
// further move request is rejected.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	white       *Player
	black       *Player
	current     *Player
	over        bool
	result      *GameResult
	check       bool
	captured    CapturedPieces
	lastMove    *SimpleMove
	seats       GamePlayers
	whiteClock  *Clock
	blackClock  *Clock
	connections *GameConnections
}

func NewGame(id string) *Game {
	board := NewBoard()
	white := NewPlayer(ColorWhite, board)
	black := NewPlayer(ColorBlack, board)
	return &Game{
		ID:          id,
		board:       board,
		white:       white,
		black:       black,
		current:     white, // white goes first
		captured:    CapturedPieces{White: []Piece{}, Black: []Piece{}},
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats a player, white first, and returns the assigned color.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seats.White.ID == "" {
		g.seats.White = ClientPlayer{ID: playerID, Color: ColorWhite, TimeLeft: clockTenths(g.whiteClock)}
		return ColorWhite, nil
	}
	if g.seats.Black.ID == "" {
		g.seats.Black = ClientPlayer{ID: playerID, Color: ColorBlack, TimeLeft: clockTenths(g.blackClock)}
		return ColorBlack, nil
	}
	return "", ErrGameFull
}

// PlayerColor returns the seat color of a player, if seated.
func (g *Game) PlayerColor(playerID string) (Color, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playerColor(playerID)
}

func (g *Game) playerColor(playerID string) (Color, bool) {
	if playerID != "" && g.seats.White.ID == playerID {
		return ColorWhite, true
	}
	if playerID != "" && g.seats.Black.ID == playerID {
		return ColorBlack, true
	}
	return "", false
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	_, ok := g.PlayerColor(playerID)
	return ok
}

// CanSpectate reports whether the game still has an open seat; open games
// accept observer connections.
func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.seats.White.ID == "" || g.seats.Black.ID == ""
}

// MakeMove is the engine entry point: it attempts a move for the currently
// active side and reports why a rejected move failed. A rejection never
// changes any state.
func (g *Game) MakeMove(from, to Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.makeMove(from, to)
}

// MakeMoveAs is the network entry point: the move is additionally rejected
// when the requesting player is not seated or not the active side.
func (g *Game) MakeMoveAs(playerID string, from, to Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	color, ok := g.playerColor(playerID)
	if !ok {
		return ErrNotInGame
	}
	if color != g.current.Color() {
		return ErrNotYourTurn
	}
	return g.makeMove(from, to)
}

func (g *Game) makeMove(from, to Position) error {
	if g.over {
		return ErrGameOver
	}

	piece := g.board.GetPiece(from)
	if piece == nil {
		return ErrNoPiece
	}
	if piece.Color != g.current.Color() {
		return ErrNotYourTurn
	}

	capture := g.board.GetPiece(to)
	if !g.current.MakeMove(from, to) {
		return ErrIllegalMove
	}

	mover := g.current.Color()
	g.clockFor(mover).Stop()

	if capture != nil {
		switch capture.Color {
		case ColorWhite:
			g.captured.White = append(g.captured.White, *capture)
		case ColorBlack:
			g.captured.Black = append(g.captured.Black, *capture)
		}
	}
	g.lastMove = &SimpleMove{From: from, To: to}

	opponent := mover.Opponent()
	if g.board.IsCheckmate(opponent) {
		g.over = true
		g.check = true
		g.result = &GameResult{Winner: mover, Reason: "checkmate"}
	} else {
		g.check = g.board.IsKingInCheck(opponent)
		g.current = g.arbiterFor(opponent)
		g.clockFor(opponent).Start()
	}

	g.seats.White.TimeLeft = clockTenths(g.whiteClock)
	g.seats.Black.TimeLeft = clockTenths(g.blackClock)

	go g.broadcastState(g.snapshot())
	return nil
}

// CurrentTurn returns the color of the active side.
func (g *Game) CurrentTurn() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current.Color()
}

// IsGameOver reports whether the game has reached its terminal state.
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

// Winner returns the side that delivered checkmate, once the game is over.
func (g *Game) Winner() (Color, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result == nil {
		return "", false
	}
	return g.result.Winner, true
}

// Board returns a deep copy of the board for read-only inspection. The live
// board never leaves the game's lock.
func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// State returns a snapshot of the game for clients. The board in the
// snapshot is a deep copy, so callers can hold it without racing the game.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	return GameState{
		Board:          g.board.Clone(),
		ToMove:         g.current.Color(),
		IsCheck:        g.check,
		CapturedPieces: g.captured,
		LastMove:       g.lastMove,
		Result:         g.result,
		Players:        g.seats,
	}
}

func (g *Game) arbiterFor(color Color) *Player {
	if color == ColorWhite {
		return g.white
	}
	return g.black
}

func (g *Game) clockFor(color Color) *Clock {
	if color == ColorWhite {
		return g.whiteClock
	}
	return g.blackClock
}

// clockTenths reports remaining time in tenths of a second, the unit the
// frontend renders.
func clockTenths(c *Clock) int {
	return int(c.TimeLeft().Milliseconds() / 100)
}

// RegisterConnection attaches a websocket connection to the game and pushes
// the current state to it. A player keeps at most one connection; a
// duplicate attempt is closed politely.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	_, seated := g.playerColor(playerID)
	authorized := seated || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState(g.State())
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

// broadcastMessages builds the messages pushed for one snapshot: the state
// itself, followed by a gameOver notice once the snapshot carries a result.
func broadcastMessages(state GameState) ([]ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	msgs := []ws.Message{{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}}

	if state.Result != nil {
		resultPayload, err := json.Marshal(state.Result)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, ws.Message{
			Type:    ws.MessageTypeGameOver,
			Payload: json.RawMessage(resultPayload),
		})
	}
	return msgs, nil
}

func (g *Game) broadcastState(state GameState) {
	msgs, err := broadcastMessages(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		for _, msg := range msgs {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("send state to player %s: %v", playerID, err)
				delete(g.connections.connections, playerID)
				break
			}
		}
	}
}
