// service/game_manager.go
package service

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/benbeisheim/chess-rules-engine/internal/model"
	"github.com/benbeisheim/chess-rules-engine/internal/ws"
)

// logger is resolved per call; main installs the default handler after init.
func logger() *slog.Logger {
	return slog.Default().With("package", "service")
}

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// Conn is the server side of a client connection.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type connection struct {
	mu       sync.Mutex
	clientID string
	conn     Conn
}

func (c *connection) send(msg ws.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

func (c *connection) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

// Session is one hosted game. Every call into the game goes through the
// session mutex; game events are fanned out to the registered connections
// while that mutex is held.
type Session struct {
	id     string
	mu     sync.Mutex
	game   *model.Game
	conns  map[string]*connection
	stop   func() // cancels the event subscription
	closed bool
}

func newSession(id string, game *model.Game) *Session {
	s := &Session{
		id:    id,
		game:  game,
		conns: make(map[string]*connection),
	}
	s.stop = game.Subscribe(s.handleEvent)
	return s
}

// do runs fn with exclusive access to the game.
func (s *Session) do(fn func(g *model.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

func (s *Session) handleEvent(e model.Event) {
	var (
		msg ws.Message
		err error
	)
	switch e.Kind {
	case model.EventRefresh:
		msg, err = ws.NewMessage(ws.MessageTypeGameState, s.game.State())
	case model.EventStatus:
		msg, err = ws.NewMessage(ws.MessageTypeStatus, ws.StatusPayload{Text: e.Status})
	case model.EventPlayerChanged:
		msg, err = ws.NewMessage(ws.MessageTypePlayerChanged, model.ClientPlayer{Name: e.Player.Name(), Color: e.Player.Color()})
	case model.EventHighlight:
		msg, err = ws.NewMessage(ws.MessageTypeHighlight, e.Highlight)
	default:
		return
	}
	if err != nil {
		logger().Error("encoding event", "game", s.id, "kind", e.Kind, "error", err)
		return
	}
	s.broadcast(msg)
}

// broadcast must be called with s.mu held.
func (s *Session) broadcast(msg ws.Message) {
	for id, c := range s.conns {
		if err := c.send(msg); err != nil {
			logger().Warn("dropping connection after failed write", "game", s.id, "client", c.clientID, "conn", id, "error", err)
			delete(s.conns, id)
		}
	}
}

type GameManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(gameID string, game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return ErrGameExists
	}

	gm.sessions[gameID] = newSession(gameID, game)
	logger().Info("game created", "game", gameID)
	return nil
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// WithGame runs fn on the game with exclusive access.
func (gm *GameManager) WithGame(gameID string, fn func(g *model.Game) error) error {
	s, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}
	return s.do(fn)
}

// RemoveGame ends a session. Every connection is sent a gameClosed message
// and then closed.
func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	s, exists := gm.sessions[gameID]
	delete(gm.sessions, gameID)
	gm.mu.Unlock()
	if !exists {
		return ErrGameNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stop()
	if msg, err := ws.NewMessage(ws.MessageTypeGameClosed, ws.StatusPayload{Text: StatusGameOver}); err == nil {
		s.broadcast(msg)
	}
	for id, c := range s.conns {
		if err := c.close(); err != nil {
			logger().Debug("closing connection", "game", gameID, "conn", id, "error", err)
		}
	}
	clear(s.conns)
	logger().Info("game removed", "game", gameID)
	return nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.sessions)
}

// RegisterConnection adds conn to the game's fan-out, sends it the current
// state and returns the ID it is registered under. Several connections may
// share a client ID; each gets its own connection ID.
func (gm *GameManager) RegisterConnection(gameID, clientID string, conn Conn) (string, error) {
	s, err := gm.GetSession(gameID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrGameNotFound
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.game.State())
	if err != nil {
		return "", err
	}
	connID := uuid.New().String()
	c := &connection{clientID: clientID, conn: conn}
	if err := c.send(msg); err != nil {
		return "", err
	}
	s.conns[connID] = c
	logger().Debug("connection registered", "game", gameID, "client", clientID, "conn", connID, "connections", len(s.conns))
	return connID, nil
}

func (gm *GameManager) UnregisterConnection(gameID, connID string) {
	s, err := gm.GetSession(gameID)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, connID)
	logger().Debug("connection unregistered", "game", gameID, "conn", connID)
}

// Send writes msg to one connection of the game.
func (gm *GameManager) Send(gameID, connID string, msg ws.Message) error {
	s, err := gm.GetSession(gameID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	c, ok := s.conns[connID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return c.send(msg)
}
