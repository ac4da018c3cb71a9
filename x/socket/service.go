//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const (
	channel      = "characters"
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

// Publisher is the write side of the broadcast channel
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Service is the broadcast hub. Events published on the redis channel are
// fanned out to every connected listener; delivery is best-effort and
// nothing is replayed.
type Service interface {
	Publisher
	AddClient(ws *websocket.Conn)
	RemoveClient(ws *websocket.Conn)
	CurrentConnectionCount() int64
}

type client struct {
	alive bool
}

type service struct {
	rdb *redis.Client

	clients      map[*websocket.Conn]*client
	clientsMutex *sync.Mutex
}

// NewService creates the hub and starts the redis subscription and the
// liveness sweeper
func NewService(rdb *redis.Client) Service {
	newservice := &service{
		rdb:          rdb,
		clients:      make(map[*websocket.Conn]*client),
		clientsMutex: &sync.Mutex{},
	}
	go newservice.subscriptionRoutine()
	go newservice.livenessRoutine()
	return newservice
}

func NewServiceForTest(rdb *redis.Client) *service {
	return &service{
		rdb:          rdb,
		clients:      make(map[*websocket.Conn]*client),
		clientsMutex: &sync.Mutex{},
	}
}

// Publish serializes the event onto the redis channel. The hub's
// subscriber goroutine carries it to listeners, so this never waits on a
// slow socket.
func (s *service) Publish(ctx context.Context, event Event) error {
	message, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.rdb.Publish(ctx, channel, message).Err()
}

// AddClient adds a connection to the broadcast group
func (s *service) AddClient(ws *websocket.Conn) {
	s.clientsMutex.Lock()
	s.clients[ws] = &client{alive: true}
	s.clientsMutex.Unlock()

	ws.SetPongHandler(func(string) error {
		s.clientsMutex.Lock()
		if c, ok := s.clients[ws]; ok {
			c.alive = true
		}
		s.clientsMutex.Unlock()
		return nil
	})
}

// RemoveClient removes a connection from the broadcast group
func (s *service) RemoveClient(ws *websocket.Conn) {
	s.clientsMutex.Lock()
	delete(s.clients, ws)
	s.clientsMutex.Unlock()
	ws.Close()
}

// CurrentConnectionCount returns the number of connected listeners
func (s *service) CurrentConnectionCount() int64 {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()
	return int64(len(s.clients))
}

// NotifyAllClients writes message to every open listener. A listener that
// fails the write is dropped on the spot.
func (s *service) NotifyAllClients(message []byte) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	for ws := range s.clients {
		ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(websocket.TextMessage, message); err != nil {
			slog.Error(
				fmt.Sprintf("failed to write websocket message: %v", err),
				slog.String("module", "socket"),
			)
			delete(s.clients, ws)
			ws.Close()
		}
	}
}

func (s *service) subscriptionRoutine() {
	pubsub := s.rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	for {
		message, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			slog.Error(
				fmt.Sprintf("failed to receive pubsub message: %v", err),
				slog.String("module", "socket"),
			)
			time.Sleep(time.Second)
			continue
		}
		s.NotifyAllClients([]byte(message.Payload))
	}
}

func (s *service) livenessRoutine() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.sweepClients()
	}
}

// sweepClients drops every listener that missed the previous probe, then
// re-probes the survivors.
func (s *service) sweepClients() {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	for ws, c := range s.clients {
		if !c.alive {
			delete(s.clients, ws)
			ws.Close()
			continue
		}
		c.alive = false
		if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
			delete(s.clients, ws)
			ws.Close()
		}
	}
}
