package models

// Message is one support message. IDs are unix-millisecond timestamps taken
// at append time; CreatedAt doubles as the ascending sort key.
type Message struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}
