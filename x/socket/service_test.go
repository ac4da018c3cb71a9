package socket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/shielddb/shield/internal/testutil"
)

func dialTestServer(t *testing.T, url string) *websocket.Conn {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %s", err)
	}
	return ws
}

func waitForClients(t *testing.T, s Service, want int64) {
	for i := 0; i < 50; i++ {
		if s.CurrentConnectionCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, s.CurrentConnectionCount())
}

func TestBroadcast(t *testing.T) {

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	s := NewServiceForTest(rdb)
	go s.subscriptionRoutine()

	h := NewHandler(s)
	e := echo.New()
	e.GET("/socket", h.Connect)

	server := httptest.NewServer(e)
	defer server.Close()
	url := strings.Replace(server.URL, "http", "ws", 1) + "/socket"

	// an event published before anyone connects is gone for good
	err := s.Publish(context.Background(), Event{Action: "create", Name: "early"})
	assert.NoError(t, err)

	listener0 := dialTestServer(t, url)
	defer listener0.Close()
	listener1 := dialTestServer(t, url)
	defer listener1.Close()

	waitForClients(t, s, 2)

	err = s.Publish(context.Background(), Event{
		Action:    "create",
		Name:      "zoe washburne",
		Faceclaim: "Gina Torres",
		Image:     "https://cdn.example.com/zoe.png",
		Bio:       "https://docs.example.com/zoe",
	})
	assert.NoError(t, err)

	for _, listener := range []*websocket.Conn{listener0, listener1} {
		listener.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, payload, err := listener.ReadMessage()
		if assert.NoError(t, err) {
			var event Event
			if assert.NoError(t, json.Unmarshal(payload, &event)) {
				assert.Equal(t, "create", event.Action)
				assert.Equal(t, "zoe washburne", event.Name)
				assert.Equal(t, "Gina Torres", event.Faceclaim)
			}
		}
	}

	// only the name travels on edits; viewers refetch the rest
	err = s.Publish(context.Background(), Event{Action: "edit", Name: "zoe washburne"})
	assert.NoError(t, err)

	listener0.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := listener0.ReadMessage()
	if assert.NoError(t, err) {
		var event Event
		if assert.NoError(t, json.Unmarshal(payload, &event)) {
			assert.Equal(t, "edit", event.Action)
			assert.Empty(t, event.Faceclaim)
		}
	}

	// neither listener ever saw the pre-connection event
	listener1.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err = listener1.ReadMessage()
	if assert.NoError(t, err) {
		var event Event
		if assert.NoError(t, json.Unmarshal(payload, &event)) {
			assert.Equal(t, "edit", event.Action)
		}
	}
}

func TestSweepClients(t *testing.T) {

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	s := NewServiceForTest(rdb)

	h := NewHandler(s)
	e := echo.New()
	e.GET("/socket", h.Connect)

	server := httptest.NewServer(e)
	defer server.Close()
	url := strings.Replace(server.URL, "http", "ws", 1) + "/socket"

	// the reading listener answers pings, the silent one never will
	reading := dialTestServer(t, url)
	defer reading.Close()
	silent := dialTestServer(t, url)
	defer silent.Close()

	waitForClients(t, s, 2)

	go func() {
		for {
			if _, _, err := reading.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// first sweep marks everyone suspect and probes them
	s.sweepClients()
	assert.Equal(t, int64(2), s.CurrentConnectionCount())

	// give the reading listener time to answer
	time.Sleep(500 * time.Millisecond)

	// second sweep drops the listener that never answered
	s.sweepClients()
	waitForClients(t, s, 1)
}

func TestConnectionCount(t *testing.T) {

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	s := NewServiceForTest(rdb)
	assert.Equal(t, int64(0), s.CurrentConnectionCount())

	h := NewHandler(s)
	e := echo.New()
	e.GET("/socket", h.Connect)

	server := httptest.NewServer(e)
	defer server.Close()
	url := strings.Replace(server.URL, "http", "ws", 1) + "/socket"

	listener := dialTestServer(t, url)
	waitForClients(t, s, 1)

	listener.Close()
	waitForClients(t, s, 0)
}
