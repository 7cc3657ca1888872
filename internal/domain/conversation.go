package domain

import "time"

// Message is immutable once appended. IsSystem marks structured notices
// (purchase requests, listing enquiries) that render differently but are
// stored like any other message.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SenderID  string    `json:"sender_id"`
	IsSystem  bool      `json:"is_system,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is the single support thread between one user and the
// operator, keyed by the user's derived id. At most one exists per user.
type Conversation struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	Messages      []Message `json:"messages"`
	UnreadCount   int       `json:"unread_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}
