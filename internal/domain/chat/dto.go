package chat

import (
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
}

func (r SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{Field: "recipient_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}
	if len(r.Body) > 2000 {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "must not exceed 2000 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MessageResponse struct {
	ID          string  `json:"id"`
	SenderID    string  `json:"sender_id"`
	RecipientID string  `json:"recipient_id"`
	Body        string  `json:"body"`
	CreatedAt   string  `json:"created_at"`
	ReadAt      *string `json:"read_at,omitempty"`
}
