package models

import "time"

// LeaderboardSize caps every board.
const LeaderboardSize = 20

type LeaderboardEntry struct {
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Level    int       `json:"level"`
	Accuracy float64   `json:"accuracy"`
	Date     time.Time `json:"date"`
}

// Leaderboard holds one ranked board per mode family plus the overall board.
type Leaderboard struct {
	Alphabet []LeaderboardEntry `json:"alphabet"`
	Math     []LeaderboardEntry `json:"math"`
	Overall  []LeaderboardEntry `json:"overall"`
}
