// Package socket is the receive-only live update feed for browser clients
package socket

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler handles websocket connections
type Handler interface {
	Connect(c echo.Context) error
	CurrentConnectionCount() int64
}

type handler struct {
	service Service
}

// NewHandler is used for wire.go
func NewHandler(service Service) Handler {
	return &handler{service}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the request and keeps the listener registered until it
// goes away. Listeners never send application messages; the read loop only
// services control frames.
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			fmt.Sprintf("failed to upgrade websocket: %v", err),
			slog.String("module", "socket"),
		)
		return err
	}

	h.service.AddClient(ws)
	defer h.service.RemoveClient(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	return nil
}

// CurrentConnectionCount returns the number of connected listeners
func (h handler) CurrentConnectionCount() int64 {
	return h.service.CurrentConnectionCount()
}
