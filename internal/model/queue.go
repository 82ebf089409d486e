package model

import (
	"fmt"
	"sync"
	"time"
)

// QueuedPlayer is a player waiting for a matchmaking pairing.
type QueuedPlayer struct {
	ID       string
	JoinedAt time.Time
}

// MatchFoundEvent notifies a queued player that a game has been created for
// them.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}

// Queue is the matchmaking waiting list, paired off longest-waiting first.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.ID == playerID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.players = append(q.players, QueuedPlayer{
		ID:       playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// NextPair pops the two players who have been waiting longest. It returns
// false when fewer than two players are queued.
func (q *Queue) NextPair() (string, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return "", "", false
	}

	player1 := q.players[0].ID
	player2 := q.players[1].ID
	q.players = q.players[2:]

	return player1, player2, true
}

// Remove withdraws a player from the waiting list. Removing a player who is
// not queued is a no-op.
func (q *Queue) Remove(playerID string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.players {
		if p.ID == playerID {
			q.players = append(q.players[:i], q.players[i+1:]...)
			return
		}
	}
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
