package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"chesscore/internal/model"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game, the matchmaking queue, and the
// notification channels of players waiting for a pairing.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
	}

	go gm.processMatchmaking()

	return gm
}

// processMatchmaking pairs the two longest-waiting players once a second.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.matchWaitingPlayers()
	}
}

// matchWaitingPlayers pops one pair off the queue, seats them in a fresh
// game, and delivers the pairing event to both players' channels.
func (gm *GameManager) matchWaitingPlayers() {
	player1, player2, ok := gm.queue.NextPair()
	if !ok {
		return
	}

	gameID := uuid.New().String()
	game := model.NewGame(gameID)

	p1Color, err := game.AddPlayer(player1)
	if err != nil {
		log.Printf("matchmaking: seat player %s: %v", player1, err)
		return
	}
	p2Color, err := game.AddPlayer(player2)
	if err != nil {
		log.Printf("matchmaking: seat player %s: %v", player2, err)
		return
	}

	gm.mu.Lock()
	gm.games[gameID] = game
	gm.notifyMatch(player1, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
	gm.notifyMatch(player2, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
	gm.mu.Unlock()
}

// notifyMatch sends the event to the player's matchmaking channel and closes
// it. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("matchmaking: marshal event: %v", err)
		return
	}
	select {
	case ch <- string(payload):
	default:
		log.Printf("matchmaking: player %s not listening", playerID)
	}
	delete(gm.matchingChannels, playerID)
	close(ch)
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.matchingChannels, playerID)
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(playerID)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) {
	gm.queue.Remove(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMoveAs(playerID, move.From, move.To)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
