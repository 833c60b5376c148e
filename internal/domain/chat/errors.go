package chat

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrNotRecipient    = errors.New("only the recipient can mark a message read")
)
