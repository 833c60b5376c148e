package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/chat"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/response"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/sse"
)

type ChatHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Conversation(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type ChatHandlerImpl struct {
	chatService chat.ChatService
	jwtService  jwt.Service
	hub         *sse.Hub
}

func NewChatHandler(chatService chat.ChatService, jwtService jwt.Service, hub *sse.Hub) ChatHandler {
	return &ChatHandlerImpl{
		chatService: chatService,
		jwtService:  jwtService,
		hub:         hub,
	}
}

// Send implements ChatHandler.
func (h *ChatHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req chat.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Send message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sent, err := h.chatService.Send(r.Context(), userID, req)
	if err != nil {
		slog.Error("Send message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent", sent)
}

// Conversation implements ChatHandler.
func (h *ChatHandlerImpl) Conversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	peerID := r.URL.Query().Get("peer")
	if peerID == "" {
		response.BadRequest(w, "peer query parameter is required", nil)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := h.chatService.Conversation(r.Context(), userID, peerID, limit)
	if err != nil {
		slog.Error("Conversation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}

// MarkRead implements ChatHandler.
func (h *ChatHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	updated, err := h.chatService.MarkRead(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// StreamToken generates a short-lived token for stream connections,
// which cannot carry an Authorization header.
func (h *ChatHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(userID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream handles the SSE connection for real-time message delivery.
func (h *ChatHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Token comes from a query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
