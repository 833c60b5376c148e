package chat

import "context"

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	GetByID(ctx context.Context, id string) (Message, error)
	ListConversation(ctx context.Context, userID, peerID string, limit int) ([]Message, error)
	MarkRead(ctx context.Context, id string) (Message, error)
}
