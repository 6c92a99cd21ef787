package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/game"
	"github.com/xtaxx12/snake-game/pkg/input"
	"github.com/xtaxx12/snake-game/pkg/loop"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

const writeWait = 5 * time.Second

// ClientConfig tells the browser how to size its canvas
type ClientConfig struct {
	GridSize   int `json:"gridSize"`
	CellSize   int `json:"cellSize"`
	CanvasSize int `json:"canvasSize"`
}

// ScoreBoard is the shared ranking shown next to every board
type ScoreBoard struct {
	Best int             `json:"best"`
	Top  []scores.Record `json:"top"`
}

type ServerMessage struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId,omitempty"`
	Config    *ClientConfig  `json:"config,omitempty"`
	State     *game.Snapshot `json:"state,omitempty"`
	Scores    *ScoreBoard    `json:"scores,omitempty"`
	NewRecord bool           `json:"newRecord,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

// Server hosts one game per websocket connection and a shared score list
type Server struct {
	cfg    config.Game
	keeper *scores.Keeper
	static string

	mu       sync.Mutex
	sessions map[string]*session
}

func NewServer(cfg config.Game, keeper *scores.Keeper, static string) *Server {
	s := &Server{
		cfg:      cfg,
		keeper:   keeper,
		static:   static,
		sessions: make(map[string]*session),
	}
	keeper.OnResult(func(scores.Result) { s.broadcastScores() })
	return s
}

// Routes returns the HTTP handler for the whole server
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.static)))
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("GET /api/scores", s.handleGetScores)
	mux.HandleFunc("DELETE /api/scores", s.handleClearScores)
	return mux
}

func (s *Server) scoreBoard() *ScoreBoard {
	best, top := s.keeper.Ranking()
	if top == nil {
		top = []scores.Record{}
	}
	return &ScoreBoard{Best: best, Top: top}
}

func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.scoreBoard()); err != nil {
		log.Println("Write error:", err)
	}
}

func (s *Server) handleClearScores(w http.ResponseWriter, r *http.Request) {
	if err := s.clearScores(r.Context()); err != nil {
		http.Error(w, "failed to clear scores", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearScores(ctx context.Context) error {
	if err := s.keeper.Clear(ctx); err != nil {
		log.Printf("Failed to clear scores: %v", err)
		return err
	}
	log.Println("🗑️  Scores cleared")
	s.broadcastScores()
	return nil
}

func (s *Server) broadcastScores() {
	board := s.scoreBoard()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.send(ServerMessage{Type: "scores", Scores: board})
	}
}

func (s *Server) register(sess *session) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
}

func (s *Server) unregister(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
}

// session is one connected player
type session struct {
	id       string
	outgoing chan ServerMessage
	done     chan struct{}
}

// send queues msg without blocking; a slow client loses frames
func (sess *session) send(msg ServerMessage) {
	select {
	case sess.outgoing <- msg:
	case <-sess.done:
	default:
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	sess := &session{
		id:       uuid.New().String(),
		outgoing: make(chan ServerMessage, 32),
		done:     make(chan struct{}),
	}
	log.Printf("New WebSocket connection from %s (session %s)", r.RemoteAddr, sess.id)

	g := game.NewGame(s.cfg)
	g.OnGameOver(s.keeper.Submit)
	lp := loop.New(g, func(snap game.Snapshot) {
		msg := ServerMessage{Type: "state", State: &snap}
		if snap.Phase == game.PhaseOver {
			msg.NewRecord = s.keeper.IsNewRecord(snap.Score)
		}
		sess.send(msg)
	})
	defer lp.Close()

	s.register(sess)
	defer s.unregister(sess)

	// Input handling goroutine
	go func() {
		defer close(sess.done)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Println("Read error:", err)
				}
				return
			}
			a := input.ParseAction(msg.Action)
			switch a.Kind {
			case input.ClearScores:
				if err := s.clearScores(context.Background()); err != nil {
					sess.send(ServerMessage{Type: "error", Error: "could not clear scores"})
				}
			case input.None:
				log.Printf("Session %s: unknown action %q", sess.id, msg.Action)
			default:
				input.Dispatch(lp, a)
			}
		}
	}()

	initial := lp.Snapshot()
	hello := []ServerMessage{
		{
			Type:      "config",
			SessionID: sess.id,
			Config: &ClientConfig{
				GridSize:   s.cfg.GridSize,
				CellSize:   s.cfg.CellSize,
				CanvasSize: s.cfg.GridSize * s.cfg.CellSize,
			},
		},
		{Type: "state", State: &initial},
		{Type: "scores", Scores: s.scoreBoard()},
	}
	for _, msg := range hello {
		if err := writeJSON(conn, msg); err != nil {
			log.Println("Write error:", err)
			return
		}
	}

	// Writer loop; the reader goroutine closes done on disconnect
	for {
		select {
		case msg := <-sess.outgoing:
			if err := writeJSON(conn, msg); err != nil {
				log.Println("Write error:", err)
				return
			}
		case <-sess.done:
			log.Printf("Session %s closed", sess.id)
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
