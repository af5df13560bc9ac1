package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/celiarozalenm/fn-quest-live/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for competition updates
// @Description  Connect via WebSocket to receive countdown, progress and finish frames
// @Tags         websocket
// @Param        id path int true "Competition ID"
// @Router       /ws/competition/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	competitionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid competition id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	cid := uint(competitionID)
	h.hub.AddConnection(cid, conn)
	defer h.hub.RemoveConnection(cid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
