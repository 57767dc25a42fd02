package entity

import "time"

// Read models produced by the reporting queries.

type CategoryCount struct {
	Category string
	Count    int64
}

type UnansweredQuestion struct {
	Question  string
	Timestamp time.Time
}

type PopularQuestion struct {
	Content string
	Count   int64
}

type DailyStat struct {
	Date     string
	Sessions int64
	Messages int64
}

type SessionSummary struct {
	Id           string
	CreatedAt    time.Time
	MessageCount int64
	FirstMessage *string
	LastActivity *time.Time
}

type SessionExportRow struct {
	Id              string
	CreatedAt       time.Time
	MessageCount    int64
	UnansweredCount int64
}
