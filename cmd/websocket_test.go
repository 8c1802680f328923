package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"campusBack/internal/models"
)

// dialTestConn upgrades a real websocket pair over httptest and returns
// the server side of the connection.
func dialTestConn(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial failed: %v", err)
	}

	serverConn := <-serverConns
	cleanup := func() {
		clientConn.Close()
		serverConn.Close()
		srv.Close()
	}
	return serverConn, cleanup
}

func TestHubSurvivesFailedPush(t *testing.T) {
	ws := NewWebSocketManager()
	go ws.Run()

	conn, cleanup := dialTestConn(t)
	defer cleanup()

	ws.register <- Client{ID: 1, Socket: conn}

	// Kill the connection so the next push write fails.
	conn.Close()
	ws.direct <- directNotification{userID: 1, n: models.Notification{UserID: 1, Message: "hello"}}

	// The hub must keep serving registrations after the failed write.
	next, nextCleanup := dialTestConn(t)
	defer nextCleanup()

	registered := make(chan struct{})
	go func() {
		ws.register <- Client{ID: 2, Socket: next}
		close(registered)
	}()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after a failed push")
	}
}

func TestHubDropsClientAfterFailedPush(t *testing.T) {
	ws := NewWebSocketManager()
	go ws.Run()

	conn, cleanup := dialTestConn(t)
	defer cleanup()

	ws.register <- Client{ID: 5, Socket: conn}
	conn.Close()
	ws.direct <- directNotification{userID: 5, n: models.Notification{UserID: 5, Message: "first"}}

	// A second push to the same user must be a no-op, not a hang.
	done := make(chan struct{})
	go func() {
		ws.direct <- directNotification{userID: 5, n: models.Notification{UserID: 5, Message: "second"}}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped draining direct pushes after a failed write")
	}
}
