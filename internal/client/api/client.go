package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chesscore/internal/model"
	"chesscore/internal/ws"

	"github.com/fasthttp/websocket"
)

// Client talks to the chess server's REST API on behalf of one player.
type Client struct {
	BaseURL    string
	PlayerID   string
	HTTPClient *http.Client
}

func New(baseURL, playerID string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		PlayerID: playerID,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Player-ID", c.PlayerID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			if errResp.Details != "" {
				return fmt.Errorf("%s: %s", errResp.Error, errResp.Details)
			}
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if result != nil {
		return json.Unmarshal(respBody, result)
	}
	return nil
}

// CreateGame creates a new game and returns its id.
func (c *Client) CreateGame() (string, error) {
	var resp struct {
		GameID string `json:"game_id"`
	}
	if err := c.doRequest(http.MethodPost, "/api/game/create", nil, &resp); err != nil {
		return "", err
	}
	return resp.GameID, nil
}

// JoinGame seats the player in the game and returns the assigned color.
func (c *Client) JoinGame(gameID string) (model.Color, error) {
	var resp struct {
		Color model.Color `json:"color"`
	}
	if err := c.doRequest(http.MethodPost, "/api/game/join/"+gameID, nil, &resp); err != nil {
		return "", err
	}
	return resp.Color, nil
}

// GameState fetches the current state of the game.
func (c *Client) GameState(gameID string) (model.GameState, error) {
	var state model.GameState
	if err := c.doRequest(http.MethodGet, "/api/game/"+gameID, nil, &state); err != nil {
		return model.GameState{}, err
	}
	return state, nil
}

// Move submits a move attempt.
func (c *Client) Move(gameID string, from, to model.Position) error {
	return c.doRequest(http.MethodPost, "/api/game/"+gameID+"/move", model.MoveRequest{From: from, To: to}, nil)
}

// AwaitMatch enters the matchmaking queue over the websocket endpoint and
// blocks until the server pairs the player with an opponent.
func (c *Client) AwaitMatch() (model.MatchFoundEvent, error) {
	wsURL := strings.Replace(c.BaseURL, "http", "ws", 1) + "/ws/matchmaking?playerId=" + c.PlayerID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return model.MatchFoundEvent{}, err
	}
	defer conn.Close()

	var msg ws.Message
	if err := conn.ReadJSON(&msg); err != nil {
		return model.MatchFoundEvent{}, err
	}
	if msg.Type != ws.MessageTypeMatchFound {
		return model.MatchFoundEvent{}, fmt.Errorf("unexpected message type %q", msg.Type)
	}

	var event model.MatchFoundEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return model.MatchFoundEvent{}, err
	}
	return event, nil
}
