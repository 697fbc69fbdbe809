package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chess-rules-engine/internal/service"
	"github.com/benbeisheim/chess-rules-engine/internal/ws"
)

func logger() *slog.Logger {
	return slog.Default().With("package", "controller")
}

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals("wsClientID").(string)
	connLog := logger().With("game", gameID, "client", clientID)

	// Registration sends the current state as the first message.
	connID, err := wsc.gameService.RegisterConnection(gameID, clientID, c)
	if err != nil {
		connLog.Warn("failed to register connection", "error", err)
		if msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Message: err.Error()}); err == nil {
			_ = c.WriteJSON(msg)
		}
		c.Close()
		return
	}
	connLog = connLog.With("conn", connID)
	connLog.Info("client connected")

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			connLog.Debug("read error", "error", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, connID, "malformed message")
			continue
		}

		closed, err := wsc.handleMessage(gameID, connID, msg)
		if err != nil {
			connLog.Debug("message rejected", "type", msg.Type, "error", err)
			wsc.sendError(gameID, connID, err.Error())
		}
		if closed {
			break
		}
	}

	wsc.gameService.UnregisterConnection(gameID, connID)
	connLog.Info("client disconnected")
}

// handleMessage dispatches one inbound message. closed reports that the
// game has ended and the connection should be dropped.
func (wsc *WebSocketController) handleMessage(gameID, connID string, msg ws.Message) (closed bool, err error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return false, fmt.Errorf("invalid move: %w", err)
		}
		_, err := wsc.gameService.MakeMove(gameID, move.From, move.To)
		return false, err

	case ws.MessageTypeUndo:
		return false, wsc.gameService.Undo(gameID)

	case ws.MessageTypeCommand:
		var cmd ws.CommandPayload
		if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
			return false, fmt.Errorf("invalid command: %w", err)
		}
		res, err := wsc.gameService.ExecuteCommand(gameID, cmd.Input)
		if err != nil {
			return false, err
		}
		if res.Closed {
			return true, nil
		}
		reply, err := ws.NewMessage(ws.MessageTypeCommandResult, res)
		if err != nil {
			return false, err
		}
		return false, wsc.gameService.Send(gameID, connID, reply)

	case ws.MessageTypeSelect:
		var sel ws.SelectPayload
		if err := json.Unmarshal(msg.Payload, &sel); err != nil {
			return false, fmt.Errorf("invalid selection: %w", err)
		}
		_, err := wsc.gameService.Highlight(gameID, sel.Square)
		return false, err

	case ws.MessageTypeDeselect:
		return false, wsc.gameService.ResetHighlight(gameID)

	case ws.MessageTypeHighlight:
		var toggle ws.HighlightTogglePayload
		if err := json.Unmarshal(msg.Payload, &toggle); err != nil {
			return false, fmt.Errorf("invalid highlight toggle: %w", err)
		}
		return false, wsc.gameService.SetHighlightMoves(gameID, toggle.Enabled)

	default:
		return false, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(gameID, connID, errorMsg string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Message: errorMsg})
	if err != nil {
		return
	}
	if err := wsc.gameService.Send(gameID, connID, msg); err != nil {
		logger().Debug("failed to send error", "game", gameID, "conn", connID, "error", err)
	}
}
