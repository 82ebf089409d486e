package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"chesscore/internal/model"
	"chesscore/internal/service"
	"chesscore/internal/ws"

	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs the read loop for one game socket. The connection is
// registered with the game (which pushes the current state) and unregistered
// when the loop ends.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

// HandleMatchmaking parks a socket until the matchmaker pairs the player.
// The channel is registered before the player is enqueued, so the pairing
// event cannot race the socket. The connection closes once the event is
// delivered; a player who hangs up early is withdrawn from the queue.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID := c.Locals("playerID").(string)

	ch := make(chan string, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID)

	if err := wsc.gameService.JoinMatchmaking(playerID); err != nil {
		// Already queued from a previous attempt; keep waiting.
		log.Printf("matchmaking enqueue %s: %v", playerID, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case payload, ok := <-ch:
		if !ok {
			return
		}
		if err := c.WriteJSON(ws.Message{
			Type:    ws.MessageTypeMatchFound,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("send match event to player %s: %v", playerID, err)
		}
	case <-done:
		wsc.gameService.LeaveMatchmaking(playerID)
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, _ := json.Marshal(map[string]string{"error": errorMsg})
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}
