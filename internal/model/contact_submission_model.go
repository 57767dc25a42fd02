package model

import "time"

type ContactSubmission struct {
	Id                  int64     `gorm:"primaryKey;autoIncrement"`
	SessionId           *string   `gorm:"type:text"`
	Name                string    `gorm:"type:text;not null"`
	Phone               *string   `gorm:"type:text"`
	Email               string    `gorm:"type:text;not null"`
	UnansweredQuestion  *string   `gorm:"type:text"`
	ConversationSummary string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
