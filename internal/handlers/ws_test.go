package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/config"
	"github.com/aaronzipp/gridscore/internal/render"
	"github.com/aaronzipp/gridscore/internal/store"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

// readUntil reads frames until one carries event
func readUntil(t *testing.T, conn *websocket.Conn, event string) OutMsg {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var msg OutMsg
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", event, err)
		}
		if msg.Event == event {
			return msg
		}
	}
}

func writeFrame(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteJSON(InMsg{Event: event, Data: raw}); err != nil {
		t.Fatalf("write %s: %v", event, err)
	}
}

func TestWebSocketSession(t *testing.T) {
	ctx := newTestContext()
	srv := httptest.NewServer(ctx.Routes())
	defer srv.Close()

	hostConn := dial(t, srv)
	defer hostConn.Close()
	var hello ConnectedPayload
	if err := json.Unmarshal(readUntil(t, hostConn, broadcast.EventConnected).Data, &hello); err != nil {
		t.Fatal(err)
	}
	if hello.Player == "" || len(hello.Host) != 4 {
		t.Fatalf("unexpected on_connect %+v", hello)
	}

	writeFrame(t, hostConn, EventHostSetup, HostSetupPayload{Host: hello.Host, Player: hello.Player})
	var view render.RoomView
	if err := json.Unmarshal(readUntil(t, hostConn, broadcast.EventUpdateRoom).Data, &view); err != nil {
		t.Fatal(err)
	}
	if view.ClientCount != 1 {
		t.Fatalf("expected 1 client, got %d", view.ClientCount)
	}

	guestConn := dial(t, srv)
	readUntil(t, guestConn, broadcast.EventConnected)
	writeFrame(t, guestConn, EventJoinLobby, JoinLobbyPayload{Join: hello.Host})
	readUntil(t, guestConn, broadcast.EventUpdateRoom)
	readUntil(t, hostConn, broadcast.EventPlayerJoined)

	_ = guestConn.Close()
	readUntil(t, hostConn, broadcast.EventPlayerLeft)

	_ = hostConn.Close()
	deadline := time.Now().Add(5 * time.Second)
	for ctx.Rooms.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("room not removed after every client left")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWebSocketBadFrame(t *testing.T) {
	ctx := newTestContext()
	srv := httptest.NewServer(ctx.Routes())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	readUntil(t, conn, broadcast.EventConnected)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	var p ErrPayload
	if err := json.Unmarshal(readUntil(t, conn, broadcast.EventError).Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.Code != "BAD_JSON" {
		t.Fatalf("expected BAD_JSON, got %s", p.Code)
	}
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	cfg := config.Config{PublicURL: "http://grid.test", AllowedOrigins: []string{"https://grid.example"}}
	srv := httptest.NewServer(NewContext(store.NewRoomStore(), cfg).Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{"Origin": {"https://evil.example"}}
	if _, _, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		t.Fatal("expected handshake to fail for a foreign origin")
	}
}
