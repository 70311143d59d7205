package websocket

import (
	"net/http"

	"CricketTrumps/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws  (JwtAuthMiddleware sets identity)
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetString("identity")
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Log.Warn("websocket upgrade", "err", err)
			return
		}

		client := &Client{
			Address: id,
			Conn:    conn,
			Send:    make(chan OutgoingMessage, 32),
			Hub:     hub,
		}

		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}
