package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/chat"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/database"
)

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) chat.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

const messageColumns = `id, sender_id, recipient_id, body, created_at, read_at`

func scanMessage(row pgx.Row) (chat.Message, error) {
	var m chat.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt, &m.ReadAt)
	return m, err
}

// Create implements chat.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO messages (sender_id, recipient_id, body)
		VALUES ($1, $2, $3)
		RETURNING ` + messageColumns

	created, err := scanMessage(q.QueryRow(ctx, query, m.SenderID, m.RecipientID, m.Body))
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return created, nil
}

// GetByID implements chat.MessageRepository.
func (r *messageRepositoryImpl) GetByID(ctx context.Context, id string) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	found, err := scanMessage(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return chat.Message{}, chat.ErrMessageNotFound
		}
		return chat.Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return found, nil
}

// ListConversation implements chat.MessageRepository.
func (r *messageRepositoryImpl) ListConversation(ctx context.Context, userID, peerID string, limit int) ([]chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, userID, peerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead implements chat.MessageRepository.
func (r *messageRepositoryImpl) MarkRead(ctx context.Context, id string) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE messages
		SET read_at = COALESCE(read_at, NOW())
		WHERE id = $1
		RETURNING ` + messageColumns

	updated, err := scanMessage(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return chat.Message{}, chat.ErrMessageNotFound
		}
		return chat.Message{}, fmt.Errorf("failed to mark message read: %w", err)
	}
	return updated, nil
}
