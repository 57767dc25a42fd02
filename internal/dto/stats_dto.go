package dto

import "time"

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type UnansweredQuestionItem struct {
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatStats struct {
	TotalSessions       int64                    `json:"totalSessions"`
	TotalMessages       int64                    `json:"totalMessages"`
	UnansweredCount     int64                    `json:"unansweredCount"`
	CategoryStats       []CategoryStat           `json:"categoryStats"`
	UnansweredQuestions []UnansweredQuestionItem `json:"unansweredQuestions"`
}

// EmptyChatStats is the degraded payload returned when the reporting
// queries fail; slices are allocated so they serialize as [] rather than
// null.
func EmptyChatStats() *ChatStats {
	return &ChatStats{
		CategoryStats:       []CategoryStat{},
		UnansweredQuestions: []UnansweredQuestionItem{},
	}
}
