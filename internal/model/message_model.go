package model

import "time"

type Message struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	SessionId   string    `gorm:"type:text;not null;index"`
	Role        string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	Category    *string   `gorm:"type:text"`
	// Pointer so an explicit false survives the column default.
	AnswerFound *bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
