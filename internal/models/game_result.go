package models

import "time"

// GameResult is what a finished session reports to the profile store.
type GameResult struct {
	Mode         string    `json:"mode"`
	Board        string    `json:"board"`
	Score        int       `json:"score"`
	Level        int       `json:"level"`
	Accuracy     float64   `json:"accuracy"`
	AverageTime  float64   `json:"average_time"`
	TotalAnswers int       `json:"total_answers"`
	FinishedAt   time.Time `json:"finished_at"`
}

// AnswerRecord is one graded round reported to the profile store.
// Timeouts have Answered false and no elapsed time.
type AnswerRecord struct {
	Correct   bool
	Answered  bool
	ElapsedMs int64
}
