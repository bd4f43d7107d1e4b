package game

import (
	"github.com/vytor/letterflash/internal/quiz"
)

// Snapshot is a copy of the session as the adapter needs it to redraw.
type Snapshot struct {
	SessionID        string         `json:"session_id,omitempty"`
	State            State          `json:"state"`
	Paused           bool           `json:"paused"`
	Mode             string         `json:"mode,omitempty"`
	Operation        string         `json:"operation,omitempty"`
	Digits           int            `json:"digits,omitempty"`
	Round            int            `json:"round"`
	Lives            int            `json:"lives"`
	Level            int            `json:"level"`
	QuestionsInLevel int            `json:"questions_in_level"`
	Correct          int            `json:"correct"`
	Incorrect        int            `json:"incorrect"`
	TotalAnswers     int            `json:"total_answers"`
	Accuracy         float64        `json:"accuracy"`
	AverageTime      float64        `json:"average_time"`
	BaseTimeLimit    float64        `json:"base_time_limit"`
	TimeLeft         int            `json:"time_left"`
	Warning          bool           `json:"warning"`
	Instruction      string         `json:"instruction,omitempty"`
	Question         *quiz.Question `json:"question,omitempty"`
	Summary          *Summary       `json:"summary,omitempty"`
}

// Snapshot copies the current session.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{State: m.state, Paused: m.paused}
	if m.tracker == nil {
		return s
	}

	t := m.tracker
	s.SessionID = m.sessionID
	s.Mode = m.mode.String()
	if m.mode == quiz.ModePureMath {
		s.Operation = m.settings.Operation.String()
		s.Digits = m.settings.Digits
	}
	s.Round = m.round
	s.Lives = t.Lives
	s.Level = t.Level
	s.QuestionsInLevel = t.QuestionsInLevel
	s.Correct = t.Correct
	s.Incorrect = t.Incorrect
	s.TotalAnswers = t.TotalAnswers
	s.Accuracy = t.Accuracy()
	s.AverageTime = t.AverageTimeSeconds()
	s.BaseTimeLimit = t.BaseTimeLimit
	s.TimeLeft = m.countdown.Left()
	s.Warning = m.countdown.Warning()

	if m.state == StateAwaitingAnswer || m.state == StateGrading {
		q := m.question
		q.Options = append([]quiz.Value(nil), m.question.Options...)
		s.Question = &q
		s.Instruction = q.Instruction()
	}
	if m.summary != nil {
		sum := *m.summary
		s.Summary = &sum
	}
	return s
}
