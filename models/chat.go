package models

// ChatMessage is one message in a consultation room or the assistant thread.
type ChatMessage struct {
	ID        string `bson:"id" json:"id"`
	RoomID    string `bson:"roomId" json:"roomId"`
	Text      string `bson:"text" json:"text"`
	FromUser  bool   `bson:"fromUser" json:"fromUser"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// ChatTurn is a role-tagged message handed to the language model.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantContext is the rolling per-user conversation kept in Redis.
type AssistantContext struct {
	Turns []ChatTurn `json:"turns"`
}
