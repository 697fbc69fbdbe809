package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chess-rules-engine/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// client -> server
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeCommand   MessageType = "command"
	MessageTypeSelect    MessageType = "select"
	MessageTypeDeselect  MessageType = "deselect"
	MessageTypeHighlight MessageType = "highlight"

	// server -> client
	MessageTypeGameState     MessageType = "gameState"
	MessageTypeStatus        MessageType = "status"
	MessageTypePlayerChanged MessageType = "playerChanged"
	MessageTypeCommandResult MessageType = "commandResult"
	MessageTypeError         MessageType = "error"
	MessageTypeGameClosed    MessageType = "gameClosed"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type MovePayload struct {
	From model.Position `json:"from"`
	To   model.Position `json:"to"`
}

type CommandPayload struct {
	Input string `json:"input"`
}

type SelectPayload struct {
	Square model.Position `json:"square"`
}

type HighlightTogglePayload struct {
	Enabled bool `json:"enabled"`
}

type StatusPayload struct {
	Text string `json:"text"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage marshals payload into a message of type t.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
