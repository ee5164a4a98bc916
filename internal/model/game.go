package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.Mutex
}

// Game guards one GameState for the goroutines serving its players.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	local       bool
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		connections: NewGameConnections(),
	}
}

// NewLocalGame is a hot-seat game: the first player to join takes both seats.
func NewLocalGame(id string) *Game {
	g := NewGame(id)
	g.local = true
	return g
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID == "" {
		return "", ErrNotInGame
	}
	players := &g.state.Players
	switch playerID {
	case players.White.ID:
		return White, nil
	case players.Black.ID:
		return Black, nil
	}

	if players.White.ID == "" {
		players.White = ClientPlayer{ID: playerID, Color: White}
		if g.local {
			players.Black = ClientPlayer{ID: playerID, Color: Black}
		}
		log.Infof("game %s: player %s seated as white", g.ID, playerID)
		return White, nil
	}
	if players.Black.ID == "" {
		players.Black = ClientPlayer{ID: playerID, Color: Black}
		log.Infof("game %s: player %s seated as black", g.ID, playerID)
		return Black, nil
	}
	return "", ErrGameFull
}

// GetState returns a snapshot that is safe to read after the lock is released.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Clone()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if playerID == "" {
		return false
	}
	return g.state.Players.White.ID == playerID || g.state.Players.Black.ID == playerID
}

func (g *Game) canSpectate() bool {
	return g.state.Players.White.ID == "" || g.state.Players.Black.ID == ""
}

// moverColor is the side playerID is moving for. A player holding both
// seats always moves for the side to move.
func (g *Game) moverColor(playerID string) (Color, error) {
	players := g.state.Players
	white := playerID != "" && players.White.ID == playerID
	black := playerID != "" && players.Black.ID == playerID
	switch {
	case white && black:
		return g.state.ToMove, nil
	case white:
		return White, nil
	case black:
		return Black, nil
	}
	return "", ErrNotInGame
}

// MakeMove applies a move for playerID. The rules engine only answers
// yes or no; the reason for a refusal is reconstructed here for the client.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !move.From.InBounds() || !move.To.InBounds() {
		return ErrOutOfBounds
	}
	mover, err := g.moverColor(playerID)
	if err != nil {
		return err
	}
	piece := g.state.Board.PieceAt(move.From)
	if piece == nil {
		return ErrNoPiece
	}
	if mover != g.state.ToMove || piece.Color != mover {
		return ErrNotYourTurn
	}
	if !g.state.AcceptMove(move.From, move.To, mover) {
		return fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, piece.Type, move.From, move.To)
	}
	g.state.clearSelection()
	log.Debugf("game %s: %s %s %s-%s", g.ID, mover, piece.Type, move.From, move.To)

	go g.broadcastState()
	return nil
}

// Select forwards a square click by playerID to the selection protocol.
func (g *Game) Select(playerID string, pos Position) (SelectResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !pos.InBounds() {
		return SelectIgnored, ErrOutOfBounds
	}
	mover, err := g.moverColor(playerID)
	if err != nil {
		return SelectIgnored, err
	}
	// the selection is shared by both seats
	if mover != g.state.ToMove {
		return SelectIgnored, nil
	}
	result := g.state.Select(pos, mover)
	if result != SelectIgnored {
		go g.broadcastState()
	}
	return result, nil
}

// Reset starts the game over from the standard position. Seats and
// connections are kept.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := g.state.Players
	g.state = NewGameState()
	g.state.Players = players
	log.Infof("game %s: reset", g.ID)

	go g.broadcastState()
}

// RegisterConnection adds conn as playerID's live channel. A second
// connection for the same player is refused with ErrDuplicateConnection and
// the first one keeps receiving updates.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotInGame
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.ClosePolicyViolation,
				ErrDuplicateConnection.Error(),
			),
		)
		return ErrDuplicateConnection
	}

	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: registered connection for player %s", g.ID, playerID)

	go g.broadcastState()
	return nil
}

// UnregisterConnection drops playerID's connection if it is still conn.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Infof("game %s: unregistering connection for player %s", g.ID, playerID)
		delete(g.connections.connections, playerID)
	}
}

// SendError delivers err to playerID's connection only.
func (g *Game) SendError(playerID string, err error) {
	payload, merr := json.Marshal(ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, ok := g.connections.connections[playerID]
	if !ok {
		return
	}
	if werr := conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	}); werr != nil {
		log.Debugf("game %s: failed to send error to player %s: %v", g.ID, playerID, werr)
	}
}

// broadcastState pushes the current state to every connection. The state is
// read while the connections lock is held, so successive broadcasts never go
// backwards and the last one out is always current. Lock order is
// connections.mu then mu; nothing holding mu takes connections.mu.
func (g *Game) broadcastState() {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if len(g.connections.connections) == 0 {
		return
	}
	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
