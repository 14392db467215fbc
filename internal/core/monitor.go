package core

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"RoverLink/internal/util"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// StatusEvent is one monitor update: the command the rover just
// evaluated and the actuation state it left behind.
type StatusEvent struct {
	Rover   string  `json:"rover"`
	Command string  `json:"command"`
	Speed   int     `json:"speed"`
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
}

// Monitor is a lightweight diagnostics feed: it broadcasts every
// evaluated command to websocket clients and serves the latest state
// over HTTP. It is observation only; nothing flows back to the rover
// through it.
type Monitor struct {
	Addr    string
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
	last    StatusEvent
	server  *http.Server
}

// NewMonitor constructs a Monitor listening on addr.
func NewMonitor(addr string) *Monitor {
	return &Monitor{Addr: addr, clients: map[*websocket.Conn]bool{}}
}

// Start launches the HTTP server for the ws and state endpoints.
// This call blocks until the server stops or fails.
func (m *Monitor) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleWS)
	mux.HandleFunc("/api/state", m.handleState)
	m.server = &http.Server{Addr: m.Addr, Handler: mux}
	util.Info("monitor listening on %s", m.Addr)
	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		util.Error("monitor: %v", err)
	}
}

// Stop shuts down the HTTP server.
func (m *Monitor) Stop() {
	if m.server != nil {
		_ = m.server.Close()
	}
}

// handleWS upgrades HTTP to websocket and registers the client for
// broadcasts.
func (m *Monitor) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
			if err := conn.Close(); err != nil {
				util.Error("monitor: close websocket: %v", err)
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// handleState returns the most recent event as JSON.
func (m *Monitor) handleState(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(last); err != nil {
		util.Error("monitor: encode state: %v", err)
	}
}

// Broadcast sends an event to all connected websocket clients.
func (m *Monitor) Broadcast(ev StatusEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = ev
	for c := range m.clients {
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}
