package leaderboard

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Route paths served by Server.
const (
	ScoresPath = "/api/scores"
	HealthPath = "/healthz"
	FeedPath   = "/ws/scores"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	maxBodyBytes = 4096
)

// Server exposes a Backend over HTTP and pushes accepted entries to
// WebSocket subscribers.
type Server struct {
	backend  Backend
	cooldown *Cooldown
	logger   *log.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	hub      *hub
	now      func() time.Time
}

// NewServer creates a server enforcing cooldown per user ID.
func NewServer(backend Backend, cooldown time.Duration, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		backend:  backend,
		cooldown: NewCooldown(cooldown),
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		hub: newHub(),
		now: time.Now,
	}

	r := mux.NewRouter()
	r.HandleFunc(ScoresPath, s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc(ScoresPath, s.handleTop).Methods(http.MethodGet)
	r.HandleFunc(HealthPath, s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc(FeedPath, s.handleFeed)
	s.router = r

	go s.hub.run()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close disconnects all feed subscribers.
func (s *Server) Close() {
	s.hub.stop()
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var e Entry
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed entry"})
		return
	}
	if err := e.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if !s.cooldown.Allow(e.UserID) {
		w.Header().Set("Retry-After", strconv.Itoa(int(s.cooldown.Remaining(e.UserID).Seconds() + 0.5)))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: ErrRateLimited.Error()})
		return
	}

	e.ID = 0
	e.CreatedAt = s.now().UTC()
	if err := s.backend.Save(r.Context(), e); err != nil {
		s.logger.Error("save failed", "player", e.PlayerName, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "cannot save entry"})
		return
	}

	s.logger.Info("score accepted", "player", e.PlayerName, "score", e.Score, "level", e.Level)
	if data, err := json.Marshal(e); err == nil {
		s.hub.broadcast(data)
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.backend.Top(r.Context(), limit)
	if err != nil {
		s.logger.Error("top failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "cannot load leaderboard"})
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("ws upgrade failed", "err", err)
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, 32)}
	if !s.hub.add(sub) {
		conn.Close()
		return
	}
	s.logger.Debug("feed subscriber connected", "remote", r.RemoteAddr)

	go sub.writeLoop()

	// Drain reads until the peer goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("feed read error", "err", err)
			}
			break
		}
	}
	s.hub.remove(sub)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// subscriber is one feed connection. send is closed by the hub.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

func (s *subscriber) writeLoop() {
	defer s.conn.Close()
	for msg := range s.send {
		_ = s.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// hub fans messages out to subscribers. Slow subscribers are dropped.
type hub struct {
	mu      sync.Mutex
	subs    map[*subscriber]struct{}
	msgs    chan []byte
	done    chan struct{}
	stopped bool
}

func newHub() *hub {
	return &hub{
		subs: make(map[*subscriber]struct{}),
		msgs: make(chan []byte, 64),
		done: make(chan struct{}),
	}
}

func (h *hub) run() {
	for {
		select {
		case msg := <-h.msgs:
			h.mu.Lock()
			for sub := range h.subs {
				select {
				case sub.send <- msg:
				default:
					delete(h.subs, sub)
					close(sub.send)
				}
			}
			h.mu.Unlock()
		case <-h.done:
			return
		}
	}
}

func (h *hub) add(s *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return false
	}
	h.subs[s] = struct{}{}
	return true
}

func (h *hub) remove(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.send)
	}
}

// broadcast queues msg; it is dropped if the hub is backed up.
func (h *hub) broadcast(msg []byte) {
	select {
	case h.msgs <- msg:
	default:
	}
}

// count returns the number of live subscribers.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *hub) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	close(h.done)
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.send)
	}
}

