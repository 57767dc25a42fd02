package entity

import "time"

type ContactSubmission struct {
	Id                  int64
	SessionId           *string
	Name                string
	Phone               *string
	Email               string
	UnansweredQuestion  *string
	ConversationSummary string
	CreatedAt           time.Time
}
