package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"campusBack/internal/models"
)

const (
	readLimit     = 1 << 20 // 1 MB
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

type directNotification struct {
	userID int
	n      models.Notification
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

// WebSocketManager pushes notifications to connected clients. All
// operations on clients happen inside Run.
type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	direct     chan directNotification
	register   chan Client
	unregister chan unreg
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directNotification),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// Notify hands a notification to the hub without blocking the caller;
// a disconnected recipient just misses the push.
func (ws *WebSocketManager) Notify(n models.Notification) {
	select {
	case ws.direct <- directNotification{userID: n.UserID, n: n}:
	default:
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			// A user reconnecting replaces their old socket.
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register user=%d", client.ID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.userID)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case d := <-ws.direct:
			conn, ok := ws.clients[d.userID]
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteJSON(d.n); err != nil {
				// Cleanup happens inline; Run is the only receiver on
				// unregister, so sending there from here would block forever.
				log.Printf("WS write error for user=%d: %v", d.userID, err)
				_ = conn.Close()
				delete(ws.clients, d.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades the connection for the authenticated user
// and keeps it registered until the client goes away.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	app.wsManager.register <- Client{ID: userID, Socket: conn}

	go app.keepAlive(conn, userID)
}

func (app *application) keepAlive(conn *websocket.Conn, userID int) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		app.wsManager.unregister <- unreg{userID: userID, conn: conn}
	}()

	go func() {
		// Drain control frames; clients never send data here.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for range ticker.C {
		conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}
