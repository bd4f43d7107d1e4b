// Package progress keeps the per-session score counters and applies the
// lives, level and high-score rules.
package progress

import (
	"math"
	"time"
)

const (
	StartingLives     = 5
	StartingLevel     = 1
	QuestionsPerLevel = 5

	maxTimeLimit = 10.0
	minTimeLimit = 3.0
	timeStep     = 0.5
)

// BaseTimeLimit returns the per-round limit in seconds for a level:
// max(3, 10 - (level-1)*0.5).
func BaseTimeLimit(level int) float64 {
	return math.Max(minTimeLimit, maxTimeLimit-float64(level-1)*timeStep)
}

// Outcome reports what a recorded round triggered.
type Outcome struct {
	LeveledUp     bool
	BeatHighScore bool
	GameOver      bool
}

// Tracker holds the counters of one session.
type Tracker struct {
	Lives            int
	Level            int
	QuestionsInLevel int
	Correct          int
	Incorrect        int
	TotalAnswers     int
	TotalTime        time.Duration
	BaseTimeLimit    float64

	previousHighScore int
	highScoreNotified bool
}

// New starts a tracker. previousHighScore is the profile's best before this
// session; zero disables the beat notification.
func New(previousHighScore int) *Tracker {
	return &Tracker{
		Lives:             StartingLives,
		Level:             StartingLevel,
		BaseTimeLimit:     BaseTimeLimit(StartingLevel),
		previousHighScore: previousHighScore,
	}
}

// PreviousHighScore is the high score the session started against.
func (t *Tracker) PreviousHighScore() int { return t.previousHighScore }

// Over reports whether no lives remain.
func (t *Tracker) Over() bool { return t.Lives <= 0 }

// TimeLimitSeconds is the whole-second countdown start for the current level.
func (t *Tracker) TimeLimitSeconds() int {
	return int(math.Ceil(t.BaseTimeLimit))
}

// RecordCorrect counts an answered, correct round.
func (t *Tracker) RecordCorrect(elapsed time.Duration) Outcome {
	var out Outcome
	if t.Over() {
		out.GameOver = true
		return out
	}
	t.answered(elapsed)
	t.Correct++

	t.QuestionsInLevel++
	if t.QuestionsInLevel >= QuestionsPerLevel {
		t.Level++
		t.QuestionsInLevel = 0
		t.BaseTimeLimit = BaseTimeLimit(t.Level)
		out.LeveledUp = true
	}

	if !t.highScoreNotified && t.previousHighScore > 0 && t.Correct > t.previousHighScore {
		t.highScoreNotified = true
		out.BeatHighScore = true
	}
	return out
}

// RecordIncorrect counts an answered, wrong round and takes a life.
func (t *Tracker) RecordIncorrect(elapsed time.Duration) Outcome {
	if t.Over() {
		return Outcome{GameOver: true}
	}
	t.answered(elapsed)
	return t.miss()
}

// RecordTimeout takes a life for an unanswered round. Timeouts do not count
// towards TotalAnswers or TotalTime.
func (t *Tracker) RecordTimeout() Outcome {
	if t.Over() {
		return Outcome{GameOver: true}
	}
	return t.miss()
}

func (t *Tracker) answered(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	t.TotalAnswers++
	t.TotalTime += elapsed
}

func (t *Tracker) miss() Outcome {
	t.Incorrect++
	t.Lives--
	return Outcome{GameOver: t.Lives <= 0}
}

// Accuracy is Correct/TotalAnswers as a percentage with one decimal.
func (t *Tracker) Accuracy() float64 {
	if t.TotalAnswers == 0 {
		return 0
	}
	return round1(float64(t.Correct) / float64(t.TotalAnswers) * 100)
}

// AverageTimeSeconds is the mean answer time with one decimal.
func (t *Tracker) AverageTimeSeconds() float64 {
	if t.TotalAnswers == 0 {
		return 0
	}
	return round1(t.TotalTime.Seconds() / float64(t.TotalAnswers))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
