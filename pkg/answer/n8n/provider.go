package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/pkg/answer"
)

const (
	fallbackAnswer   = "I'm sorry, I'm having trouble connecting right now. Please try again later."
	notConfiguredMsg = "I'm sorry, the chatbot is not configured yet. Please contact the administrator."
	fallbackCategory = "Other"
)

type N8nProvider struct {
	WebhookURL string
	Client     *http.Client
	logger     logger.ILogger
}

// Ensure N8nProvider implements answer.Provider
var _ answer.Provider = &N8nProvider{}

func NewN8nProvider(webhookURL string, log logger.ILogger) *N8nProvider {
	return &N8nProvider{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: log,
	}
}

// rawResponse keeps AnswerFound a pointer so an omitted field can default
// to true, distinct from an explicit false.
type rawResponse struct {
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	AnswerFound *bool  `json:"answerFound"`
}

// Ask forwards the question to the n8n webhook. Any failure (network,
// non-2xx status, empty body, invalid JSON) degrades to the canned fallback
// so the turn is still recorded as an unanswered exchange.
func (p *N8nProvider) Ask(ctx context.Context, req answer.Request) answer.Response {
	if p.WebhookURL == "" {
		p.logger.Warn("N8nProvider", "N8N_WEBHOOK_URL not configured, returning fallback response", nil)
		return answer.Response{
			Answer:      notConfiguredMsg,
			Category:    fallbackCategory,
			AnswerFound: false,
		}
	}

	res, err := p.call(ctx, req)
	if err != nil {
		p.logger.Error("N8nProvider", "Answer webhook call failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": req.SessionId,
		})
		return answer.Response{
			Answer:      fallbackAnswer,
			Category:    fallbackCategory,
			AnswerFound: false,
		}
	}
	return res
}

func (p *N8nProvider) call(ctx context.Context, req answer.Request) (answer.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return answer.Response{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return answer.Response{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpRes, err := p.Client.Do(httpReq)
	if err != nil {
		return answer.Response{}, fmt.Errorf("webhook request: %w", err)
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return answer.Response{}, fmt.Errorf("read response body: %w", err)
	}

	if httpRes.StatusCode < 200 || httpRes.StatusCode >= 300 {
		return answer.Response{}, fmt.Errorf("webhook returned status %d: %s", httpRes.StatusCode, truncate(string(body), 200))
	}

	if strings.TrimSpace(string(body)) == "" {
		return answer.Response{}, fmt.Errorf("webhook returned empty response")
	}

	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return answer.Response{}, fmt.Errorf("invalid JSON from webhook: %s", truncate(string(body), 100))
	}

	res := answer.Response{
		Answer:      raw.Answer,
		Category:    raw.Category,
		AnswerFound: true,
	}
	if res.Answer == "" {
		res.Answer = "I'm sorry, I couldn't process your request."
	}
	if res.Category == "" {
		res.Category = fallbackCategory
	}
	if raw.AnswerFound != nil {
		res.AnswerFound = *raw.AnswerFound
	}
	return res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
