package domain

import (
	"time"
)

// Feedback validation errors. Each unwraps to ErrValidation.
var (
	ErrEmptyFeedbackText   = validationError("feedback text cannot be empty")
	ErrFeedbackTextTooLong = validationError("feedback text cannot exceed 1012 characters")
)

// Feedback is free-form feedback submitted by a user.
type Feedback struct {
	ID        int64     `json:"feedback_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"feedback_text"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the Feedback has valid data.
func (f *Feedback) Validate() error {
	if f.UserID <= 0 {
		return ErrInvalidUserID
	}
	if f.Text == "" {
		return ErrEmptyFeedbackText
	}
	if len(f.Text) > 1012 {
		return ErrFeedbackTextTooLong
	}
	return nil
}
