package answer

import "context"

// Request carries the guest question plus the knowledge-base text supplied
// as context to the workflow.
type Request struct {
	Message    string `json:"message"`
	PdfContent string `json:"pdfContent"`
	SessionId  string `json:"sessionId"`
}

// Response is what the workflow produces for a single turn.
type Response struct {
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	AnswerFound bool   `json:"answerFound"`
}

// Provider defines the contract for the external answer service. Ask never
// returns an error: the chat flow must always complete, so implementations
// substitute a fallback response on any failure.
type Provider interface {
	Ask(ctx context.Context, req Request) Response
}
