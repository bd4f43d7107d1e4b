package game

import (
	"github.com/vytor/letterflash/internal/quiz"
)

// FeedbackKind classifies how a round ended.
type FeedbackKind int

const (
	FeedbackCorrect FeedbackKind = iota
	FeedbackWrong
	FeedbackTimeout
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackCorrect:
		return "correct"
	case FeedbackWrong:
		return "wrong"
	case FeedbackTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

func (k FeedbackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Feedback is shown after a round is graded. Selected is -1 on timeout.
type Feedback struct {
	Kind         FeedbackKind `json:"kind"`
	Message      string       `json:"message"`
	Answer       string       `json:"answer"`
	CorrectIndex int          `json:"correct_index"`
	Selected     int          `json:"selected"`
}

// HUD is the always-visible status line.
type HUD struct {
	Lives       int     `json:"lives"`
	Level       int     `json:"level"`
	Correct     int     `json:"correct"`
	Incorrect   int     `json:"incorrect"`
	AverageTime float64 `json:"average_time"`
	TimeLeft    int     `json:"time_left"`
	Warning     bool    `json:"warning"`
	Paused      bool    `json:"paused"`
}

// Summary is presented once when a session ends.
type Summary struct {
	Mode         string  `json:"mode"`
	Level        int     `json:"level"`
	Correct      int     `json:"correct"`
	Incorrect    int     `json:"incorrect"`
	TotalAnswers int     `json:"total_answers"`
	Accuracy     float64 `json:"accuracy"`
	AverageTime  float64 `json:"average_time"`
	HighScore    int     `json:"high_score"`
	NewHighScore bool    `json:"new_high_score"`
}

// Presenter displays the session. All calls happen on the goroutine that
// drives the Machine.
type Presenter interface {
	RenderQuestion(q quiz.Question)
	ShowFeedback(f Feedback)
	UpdateHUD(h HUD)
	ShowGameOver(s Summary)
	NotifyLevelUp(level int)
	NotifyHighScore()
}

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) RenderQuestion(quiz.Question) {}
func (NopPresenter) ShowFeedback(Feedback)        {}
func (NopPresenter) UpdateHUD(HUD)                {}
func (NopPresenter) ShowGameOver(Summary)         {}
func (NopPresenter) NotifyLevelUp(int)            {}
func (NopPresenter) NotifyHighScore()             {}
