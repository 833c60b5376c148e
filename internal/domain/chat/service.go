package chat

import "context"

type ChatService interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error)
	Conversation(ctx context.Context, userID, peerID string, limit int) ([]MessageResponse, error)
	MarkRead(ctx context.Context, userID, messageID string) (MessageResponse, error)
}
