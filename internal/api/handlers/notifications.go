package handlers

import (
	"log"
	"net/http"

	"github.com/ani/point-check-backend/internal/service"
	"github.com/ani/point-check-backend/internal/stats"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// NotificationHandler streams counter notifications to websocket clients.
type NotificationHandler struct {
	broadcaster  *stats.Broadcaster
	tokenService *service.TokenService
}

func NewNotificationHandler(broadcaster *stats.Broadcaster, tokenService *service.TokenService) *NotificationHandler {
	return &NotificationHandler{
		broadcaster:  broadcaster,
		tokenService: tokenService,
	}
}

func (h *NotificationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, http.StatusUnauthorized, "Token required")
		return
	}

	if !h.tokenService.Validate(token) {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [handlers.Notifications] failed to upgrade connection: %v", err)
		return
	}

	sub := h.broadcaster.Subscribe()
	done := make(chan struct{})

	// Read pump: drains client frames and signals disconnect.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		h.broadcaster.Unsubscribe(sub)
		conn.Close()
	}()

	for {
		select {
		case n, ok := <-sub:
			if !ok {
				return
			}
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
