package dto

import "time"

// PDF knowledge base

type UploadPdfResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Filename  string `json:"filename"`
	PageCount int    `json:"pageCount"`
}

type PdfInfoResponse struct {
	HasPdf     bool       `json:"hasPdf"`
	Filename   string     `json:"filename,omitempty"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
}

type PdfContentResponse struct {
	Content string `json:"content"`
}

// Listings

type ContactListItem struct {
	Id                 int64     `json:"id"`
	SessionId          *string   `json:"session_id"`
	Name               string    `json:"name"`
	Phone              *string   `json:"phone"`
	Email              string    `json:"email"`
	UnansweredQuestion *string   `json:"unanswered_question"`
	CreatedAt          time.Time `json:"created_at"`
}

type ListContactsResponse struct {
	Contacts []ContactListItem `json:"contacts"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type SessionListItem struct {
	Id           string     `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	MessageCount int64      `json:"message_count"`
	FirstMessage *string    `json:"first_message"`
	LastActivity *time.Time `json:"last_activity"`
}

type ListSessionsResponse struct {
	Sessions []SessionListItem `json:"sessions"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type SessionInfo struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionDetailResponse struct {
	Session  SessionInfo       `json:"session"`
	Messages []MessageResponse `json:"messages"`
}

// Deletion

type BulkDeleteSessionsRequest struct {
	Ids []string `json:"ids" validate:"required,min=1"`
}

type BulkDeleteContactsRequest struct {
	Ids []int64 `json:"ids" validate:"required,min=1"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Reporting

type PopularQuestionItem struct {
	Content string `json:"content"`
	Count   int64  `json:"count"`
}

type PopularQuestionsResponse struct {
	Questions []PopularQuestionItem `json:"questions"`
}

type DailyStatItem struct {
	Date     string `json:"date"`
	Sessions int64  `json:"sessions"`
	Messages int64  `json:"messages"`
}

type DailyStatsResponse struct {
	DailyStats []DailyStatItem `json:"dailyStats"`
}
