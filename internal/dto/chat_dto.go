package dto

import "time"

type CreateSessionResponse struct {
	SessionId string `json:"sessionId"`
}

type SendMessageRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	AnswerFound bool   `json:"answerFound"`
}

type MessageResponse struct {
	Id          int64     `json:"id"`
	SessionId   string    `json:"session_id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Category    *string   `json:"category"`
	AnswerFound bool      `json:"answer_found"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
