package model

import "time"

// ChatSession rows are keyed by the opaque token handed to the widget.
type ChatSession struct {
	Id        string    `gorm:"type:text;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
