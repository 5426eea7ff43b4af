package ws

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
    CheckOrigin: func(r *http.Request) bool {
        // Allow all origins; the route sits behind JWT auth.
        return true
    },
}

type client struct {
    hub  *EventsHub
    conn *websocket.Conn
    send chan []byte
}

// EventsHandler upgrades an authenticated dashboard connection and
// registers it with the hub. The auth middleware must run first.
func EventsHandler(hub *EventsHub) gin.HandlerFunc {
    return func(c *gin.Context) {
        if _, ok := c.Get("admin"); !ok {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
            return
        }

        conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
        if err != nil {
            return
        }
        cl := &client{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
        hub.register <- cl

        go cl.writePump()
        cl.readPump()
    }
}

func (c *client) readPump() {
    defer func() {
        c.hub.unregister <- c
    }()
    c.conn.SetReadLimit(512)
    c.conn.SetReadDeadline(time.Now().Add(pongWait))
    c.conn.SetPongHandler(func(string) error {
        c.conn.SetReadDeadline(time.Now().Add(pongWait))
        return nil
    })
    for {
        // Dashboards only listen; drain anything they send.
        if _, _, err := c.conn.ReadMessage(); err != nil {
            return
        }
    }
}

func (c *client) writePump() {
    ticker := time.NewTicker(pingPeriod)
    defer ticker.Stop()
    for {
        select {
        case msg, ok := <-c.send:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if !ok {
                c.conn.WriteMessage(websocket.CloseMessage, []byte{})
                return
            }
            if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
                return
            }
        case <-ticker.C:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
                return
            }
        }
    }
}
