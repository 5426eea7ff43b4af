package ws

import (
    "encoding/json"
    "log"
    "time"
)

const (
    writeWait      = 10 * time.Second
    pongWait       = 60 * time.Second
    pingPeriod     = (pongWait * 9) / 10
    sendBufferSize = 256
)

// Event is pushed to connected dashboards whenever an admin mutates a
// city, ad, or photo, so open sessions can refresh without polling.
type Event struct {
    Type      string `json:"type"`   // created, updated, deleted
    Entity    string `json:"entity"` // cidade, anuncio, foto
    ID        string `json:"id"`
    Timestamp int64  `json:"timestamp"`
}

// EventsHub fans entity-change events out to dashboard websocket clients.
type EventsHub struct {
    register   chan *client
    unregister chan *client
    broadcast  chan []byte
    clients    map[*client]struct{}
}

func NewEventsHub() *EventsHub {
    return &EventsHub{
        register:   make(chan *client),
        unregister: make(chan *client),
        broadcast:  make(chan []byte, 256),
        clients:    make(map[*client]struct{}),
    }
}

func (h *EventsHub) Run() {
    for {
        select {
        case c := <-h.register:
            h.clients[c] = struct{}{}
        case c := <-h.unregister:
            if _, ok := h.clients[c]; ok {
                delete(h.clients, c)
                close(c.send)
                c.conn.Close()
            }
        case msg := <-h.broadcast:
            for c := range h.clients {
                select {
                case c.send <- msg:
                default:
                    delete(h.clients, c)
                    close(c.send)
                    c.conn.Close()
                }
            }
        }
    }
}

// Broadcast pushes an event to every connected dashboard. Safe on a nil
// hub so controllers don't need to care whether realtime is wired.
func (h *EventsHub) Broadcast(eventType, entity, id string) {
    if h == nil {
        return
    }
    data, err := json.Marshal(Event{
        Type:      eventType,
        Entity:    entity,
        ID:        id,
        Timestamp: time.Now().Unix(),
    })
    if err != nil {
        log.Printf("ws: failed to marshal event: %v", err)
        return
    }
    h.broadcast <- data
}
