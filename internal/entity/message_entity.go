package entity

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	Id          int64
	SessionId   string
	Role        string
	Content     string
	Category    *string
	AnswerFound bool
	CreatedAt   time.Time
}
