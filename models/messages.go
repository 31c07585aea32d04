package models

import "time"

// Message is a single chat message inside a thread. Threads are ephemeral
// and live only for the duration of the chat screen, so messages carry no
// storage tags.
type Message struct {
	MessageID string    `json:"messageId"`
	ThreadID  string    `json:"threadId"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
