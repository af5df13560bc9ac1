package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans competition updates out to every connected spectator and lobby
// screen. Connections are grouped per competition.
type Hub struct {
	mu           sync.RWMutex
	competitions map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		competitions: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(competitionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.competitions[competitionID] == nil {
		h.competitions[competitionID] = make(map[*websocket.Conn]bool)
	}
	h.competitions[competitionID][conn] = true
	log.Printf("ws: client connected to competition %d (total: %d)", competitionID, len(h.competitions[competitionID]))
}

func (h *Hub) RemoveConnection(competitionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.competitions[competitionID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.competitions, competitionID)
		}
		log.Printf("ws: client disconnected from competition %d", competitionID)
	}
}

func (h *Hub) Broadcast(competitionID uint, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.competitions[competitionID]))
	for conn := range h.competitions[competitionID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	var dead []*websocket.Conn
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		h.RemoveConnection(competitionID, conn)
	}
}
