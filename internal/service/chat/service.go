package chat

import (
	"context"
	"time"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/auth"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/chat"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/sse"
)

type ChatServiceImpl struct {
	messageRepo chat.MessageRepository
	userRepo    auth.UserRepository
	hub         *sse.Hub
}

func NewChatService(messageRepo chat.MessageRepository, userRepo auth.UserRepository, hub *sse.Hub) chat.ChatService {
	return &ChatServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		hub:         hub,
	}
}

// Send implements chat.ChatService. The stored message is pushed to the
// recipient's open stream connections; delivery is best-effort, the
// record is the source of truth.
func (s *ChatServiceImpl) Send(ctx context.Context, senderID string, req chat.SendMessageRequest) (chat.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return chat.MessageResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.RecipientID); err != nil {
		return chat.MessageResponse{}, err
	}

	created, err := s.messageRepo.Create(ctx, chat.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		return chat.MessageResponse{}, err
	}

	resp := toResponse(created)
	s.hub.Publish(req.RecipientID, sse.Event{
		UserID: req.RecipientID,
		Event:  "message",
		Data:   resp,
	})

	return resp, nil
}

// Conversation implements chat.ChatService.
func (s *ChatServiceImpl) Conversation(ctx context.Context, userID, peerID string, limit int) ([]chat.MessageResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	messages, err := s.messageRepo.ListConversation(ctx, userID, peerID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]chat.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, toResponse(m))
	}
	return responses, nil
}

// MarkRead implements chat.ChatService.
func (s *ChatServiceImpl) MarkRead(ctx context.Context, userID, messageID string) (chat.MessageResponse, error) {
	current, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return chat.MessageResponse{}, err
	}
	if current.RecipientID != userID {
		return chat.MessageResponse{}, chat.ErrNotRecipient
	}

	updated, err := s.messageRepo.MarkRead(ctx, messageID)
	if err != nil {
		return chat.MessageResponse{}, err
	}
	return toResponse(updated), nil
}

func toResponse(m chat.Message) chat.MessageResponse {
	var readAt *string
	if m.ReadAt != nil {
		formatted := m.ReadAt.Format(time.RFC3339)
		readAt = &formatted
	}

	return chat.MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		ReadAt:      readAt,
	}
}
