package dto

// Name and email are the only required fields; phone number format and the
// like are left to the frontend.
type ContactRequest struct {
	SessionId          *string `json:"sessionId"`
	Name               string  `json:"name" validate:"required"`
	Phone              *string `json:"phone"`
	Email              string  `json:"email" validate:"required"`
	UnansweredQuestion *string `json:"unansweredQuestion"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
