package ws

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"
)

func TestEventsHandlerRequiresAdmin(t *testing.T) {
    gin.SetMode(gin.TestMode)
    hub := NewEventsHub()
    go hub.Run()

    r := gin.New()
    r.GET("/ws", EventsHandler(hub))

    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/ws", nil)
    r.ServeHTTP(w, req)
    if w.Code != http.StatusUnauthorized {
        t.Fatalf("got status %d, want 401", w.Code)
    }
}

func TestHubBroadcastReachesClient(t *testing.T) {
    gin.SetMode(gin.TestMode)
    hub := NewEventsHub()
    go hub.Run()

    r := gin.New()
    r.GET("/ws", func(c *gin.Context) {
        c.Set("admin", struct{}{})
        EventsHandler(hub)(c)
    })
    srv := httptest.NewServer(r)
    defer srv.Close()

    url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
    conn, _, err := websocket.DefaultDialer.Dial(url, nil)
    if err != nil {
        t.Fatalf("dial: %v", err)
    }
    defer conn.Close()

    // Give the handler time to register the client with the hub.
    time.Sleep(100 * time.Millisecond)
    hub.Broadcast("updated", "anuncio", "ad-123")

    conn.SetReadDeadline(time.Now().Add(2 * time.Second))
    _, msg, err := conn.ReadMessage()
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    var ev Event
    if err := json.Unmarshal(msg, &ev); err != nil {
        t.Fatalf("decode event %q: %v", msg, err)
    }
    if ev.Type != "updated" || ev.Entity != "anuncio" || ev.ID != "ad-123" {
        t.Fatalf("event = %+v", ev)
    }
    if ev.Timestamp == 0 {
        t.Fatal("event timestamp not set")
    }
}
