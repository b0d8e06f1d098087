package entity

import "time"

// Message AI chat xabari
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
