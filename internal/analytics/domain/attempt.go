package domain

import "time"

// Attempt status values; replied implies opened.
const (
	StatusSent    = "Sent"
	StatusOpened  = "Opened"
	StatusReplied = "Replied"
)

// OutreachAttempt is one generated or sent cold email.
// Rows are append-only: created by generation and by the boot seeder,
// never updated or deleted afterwards.
type OutreachAttempt struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Subject     string    `json:"subject"`
	Recipient   string    `json:"recipient"`
	Probability float64   `json:"probability"`
	Status      string    `json:"status"`
	Opened      bool      `json:"opened"`
	Replied     bool      `json:"replied"`
	Timestamp   time.Time `json:"timestamp"`
}

// TableName specifies the table name for GORM
func (OutreachAttempt) TableName() string {
	return "analytics"
}

// Stats aggregates the whole analytics table.
type Stats struct {
	Total        int64   `json:"total"`
	AvgProb      float64 `json:"avgProb"`
	TotalOpened  int64   `json:"totalOpened"`
	TotalReplied int64   `json:"totalReplied"`
}
