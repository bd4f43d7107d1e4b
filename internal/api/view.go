package api

import (
	"fmt"
	"sync"

	"github.com/vytor/letterflash/internal/game"
	"github.com/vytor/letterflash/internal/quiz"
)

const maxNotifications = 10

// Notification kinds.
const (
	NotificationLevelUp   = "level_up"
	NotificationHighScore = "high_score"
)

// Notification is a transient event the client shows once. Seq increases
// monotonically so a client can skip ones it already displayed.
type Notification struct {
	Seq     int    `json:"seq"`
	Kind    string `json:"kind"`
	Level   int    `json:"level,omitempty"`
	Message string `json:"message"`
}

// OptionView is one answer button.
type OptionView struct {
	Index int        `json:"index"`
	Label string     `json:"label"`
	Value quiz.Value `json:"value"`
}

// QuestionView is the rendered question.
type QuestionView struct {
	Instruction string       `json:"instruction"`
	Prompt      string       `json:"prompt"`
	Options     []OptionView `json:"options"`
}

// ViewState is everything the client draws.
type ViewState struct {
	Question      *QuestionView  `json:"question,omitempty"`
	Feedback      *game.Feedback `json:"feedback,omitempty"`
	HUD           game.HUD       `json:"hud"`
	Summary       *game.Summary  `json:"summary,omitempty"`
	Notifications []Notification `json:"notifications"`
}

// View is the game.Presenter behind the HTTP API. The machine writes to it
// from the event loop; handlers read copies of it.
type View struct {
	mu    sync.RWMutex
	state ViewState
	seq   int
}

// NewView creates an empty view.
func NewView() *View {
	return &View{state: ViewState{Notifications: []Notification{}}}
}

var _ game.Presenter = (*View)(nil)

// Reset clears everything from the previous session.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = ViewState{Notifications: []Notification{}}
}

// State returns a copy of the view.
func (v *View) State() ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	s := v.state
	if s.Question != nil {
		q := *s.Question
		q.Options = append([]OptionView(nil), q.Options...)
		s.Question = &q
	}
	if s.Feedback != nil {
		f := *s.Feedback
		s.Feedback = &f
	}
	if s.Summary != nil {
		sum := *s.Summary
		s.Summary = &sum
	}
	s.Notifications = append([]Notification{}, s.Notifications...)
	return s
}

func (v *View) RenderQuestion(q quiz.Question) {
	opts := make([]OptionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = OptionView{Index: i, Label: o.String(), Value: o}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Question = &QuestionView{
		Instruction: q.Instruction(),
		Prompt:      q.Prompt.Text,
		Options:     opts,
	}
	v.state.Feedback = nil
}

func (v *View) ShowFeedback(f game.Feedback) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Feedback = &f
}

func (v *View) UpdateHUD(h game.HUD) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.HUD = h
}

func (v *View) ShowGameOver(s game.Summary) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Summary = &s
}

func (v *View) NotifyLevelUp(level int) {
	v.notify(Notification{
		Kind:    NotificationLevelUp,
		Level:   level,
		Message: fmt.Sprintf("LEVEL UP! Level %d", level),
	})
}

func (v *View) NotifyHighScore() {
	v.notify(Notification{Kind: NotificationHighScore, Message: "NEW HIGH SCORE!"})
}

func (v *View) notify(n Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	n.Seq = v.seq
	v.state.Notifications = append(v.state.Notifications, n)
	if over := len(v.state.Notifications) - maxNotifications; over > 0 {
		v.state.Notifications = v.state.Notifications[over:]
	}
}
