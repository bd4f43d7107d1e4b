// Package game runs one quiz session: it asks questions, grades answers,
// drives the round countdown and reports everything to a Presenter.
package game

// State is the session's position in the round cycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateGrading
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateGrading:
		return "grading"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
