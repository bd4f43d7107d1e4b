package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/progress"
	"github.com/vytor/letterflash/internal/quiz"
	"github.com/vytor/letterflash/internal/timer"
)

// Default feedback display times before the next question.
const (
	DefaultCorrectDelay   = 800 * time.Millisecond
	DefaultIncorrectDelay = 1500 * time.Millisecond
)

// Config wires a Machine to its collaborators. Generator and Scheduler are
// required; the rest default to no-ops.
type Config struct {
	Generator      *quiz.Generator
	Scheduler      timer.Scheduler
	Presenter      Presenter
	Store          Store
	Logger         *logger.Logger
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
}

// Machine is the session state machine.
//
// A Machine is not safe for concurrent use. Every input and every scheduler
// callback must run on one goroutine; in the server that is the event loop.
// Inputs that arrive in the wrong state are ignored and report false.
type Machine struct {
	gen       *quiz.Generator
	sched     timer.Scheduler
	presenter Presenter
	store     Store
	log       *logger.Logger
	ctx       context.Context

	correctDelay   time.Duration
	incorrectDelay time.Duration

	state     State
	paused    bool
	sessionID string
	mode      quiz.Mode
	settings  quiz.Settings
	tracker   *progress.Tracker

	round      int
	question   quiz.Question
	roundStart time.Time
	pausedAt   time.Time
	// timerDeferred is set when a question was shown while paused; its
	// countdown starts on resume.
	timerDeferred bool

	countdown *timer.Countdown
	advance   timer.Handle
	summary   *Summary
}

// NewMachine creates an idle machine.
func NewMachine(cfg Config) *Machine {
	if cfg.Presenter == nil {
		cfg.Presenter = NopPresenter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.CorrectDelay <= 0 {
		cfg.CorrectDelay = DefaultCorrectDelay
	}
	if cfg.IncorrectDelay <= 0 {
		cfg.IncorrectDelay = DefaultIncorrectDelay
	}

	log := cfg.Logger.WithPrefix("game")
	m := &Machine{
		gen:            cfg.Generator,
		sched:          cfg.Scheduler,
		presenter:      cfg.Presenter,
		store:          cfg.Store,
		log:            log,
		ctx:            logger.NewContext(context.Background(), log),
		correctDelay:   cfg.CorrectDelay,
		incorrectDelay: cfg.IncorrectDelay,
	}
	m.countdown = timer.NewCountdown(cfg.Scheduler, m.onTick, m.onTimeout)
	return m
}

// Start begins a fresh session, abandoning any session in progress.
func (m *Machine) Start(ctx context.Context, mode quiz.Mode, settings quiz.Settings) error {
	if mode == quiz.ModePureMath {
		if err := settings.Validate(); err != nil {
			return errors.NewValidationError("settings", err.Error())
		}
	}
	if _, err := quiz.ParseMode(mode.String()); err != nil {
		return errors.NewValidationError("mode", err.Error())
	}

	m.halt()

	highScore := 0
	if m.store != nil {
		if p, err := m.store.GetProfile(ctx); err != nil {
			m.log.Warn("failed to load profile, playing without high score: %v", err)
		} else {
			highScore = p.HighScore
		}
	}

	m.sessionID = uuid.NewString()
	m.mode = mode
	m.settings = settings
	m.tracker = progress.New(highScore)
	m.round = 0
	m.paused = false
	m.timerDeferred = false
	m.summary = nil

	m.log.WithFields(map[string]any{"session": m.sessionID, "mode": mode}).
		Info("session started: high_score=%d", highScore)

	m.nextRound()
	return nil
}

// Restart starts a new session with the current mode and settings.
func (m *Machine) Restart(ctx context.Context) bool {
	if m.state == StateIdle {
		return false
	}
	if err := m.Start(ctx, m.mode, m.settings); err != nil {
		m.log.Error("restart failed: %v", err)
		return false
	}
	return true
}

// GoHome abandons the session without finalizing it.
func (m *Machine) GoHome(ctx context.Context) bool {
	if m.state == StateIdle {
		return false
	}
	logger.FromContext(ctx).Debug("leaving session %s at state %s", m.sessionID, m.state)
	m.halt()
	m.state = StateIdle
	m.paused = false
	m.tracker = nil
	m.question = quiz.Question{}
	m.summary = nil
	return true
}

// SubmitAnswer grades v against the current question. A value that is not
// one of the question's options is ignored; it belongs to an earlier round.
func (m *Machine) SubmitAnswer(ctx context.Context, v quiz.Value) bool {
	if m.state != StateAwaitingAnswer || m.paused {
		return false
	}
	selected := m.question.OptionIndex(v)
	if selected < 0 {
		m.log.Debug("ignoring answer %s: not an option of round %d", v, m.round)
		return false
	}
	m.countdown.Stop()
	elapsed := m.sched.Now().Sub(m.roundStart)
	correct := v == m.question.Answer
	m.state = StateGrading

	var out progress.Outcome
	kind := FeedbackWrong
	if correct {
		kind = FeedbackCorrect
		out = m.tracker.RecordCorrect(elapsed)
	} else {
		out = m.tracker.RecordIncorrect(elapsed)
	}
	m.record(ctx, models.AnswerRecord{Correct: correct, Answered: true, ElapsedMs: elapsed.Milliseconds()})
	m.grade(ctx, kind, selected, out)
	return true
}

// SubmitOption answers with the option at index (0-based).
func (m *Machine) SubmitOption(ctx context.Context, index int) bool {
	if m.state != StateAwaitingAnswer || index < 0 || index >= len(m.question.Options) {
		return false
	}
	return m.SubmitAnswer(ctx, m.question.Options[index])
}

// Advance skips the remaining feedback delay.
func (m *Machine) Advance(ctx context.Context) bool {
	if m.state != StateGrading || m.paused {
		return false
	}
	m.cancelAdvance()
	m.nextRound()
	return true
}

// TogglePause suspends or resumes the session. It has no effect when idle
// or after game over.
func (m *Machine) TogglePause(ctx context.Context) bool {
	if m.state != StateAwaitingAnswer && m.state != StateGrading {
		return false
	}
	now := m.sched.Now()
	if !m.paused {
		m.paused = true
		m.pausedAt = now
		if m.state == StateAwaitingAnswer {
			m.countdown.Pause()
		}
		logger.FromContext(ctx).Debug("paused at round %d", m.round)
		m.updateHUD()
		return true
	}

	m.paused = false
	if m.state == StateAwaitingAnswer {
		if m.timerDeferred {
			m.timerDeferred = false
			m.roundStart = now
			m.countdown.Start(m.tracker.TimeLimitSeconds())
		} else {
			m.roundStart = m.roundStart.Add(now.Sub(m.pausedAt))
			m.countdown.Resume()
		}
	}
	logger.FromContext(ctx).Debug("resumed at round %d", m.round)
	m.updateHUD()
	return true
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Paused reports whether the session is suspended.
func (m *Machine) Paused() bool { return m.paused }

// Round returns the 1-based number of the current question.
func (m *Machine) Round() int { return m.round }

func (m *Machine) nextRound() {
	m.round++
	m.question = m.gen.Generate(m.mode, m.settings)
	m.state = StateAwaitingAnswer
	m.roundStart = m.sched.Now()
	m.presenter.RenderQuestion(m.question)

	if m.paused {
		m.timerDeferred = true
		m.countdown.Stop()
	} else {
		m.countdown.Start(m.tracker.TimeLimitSeconds())
	}
	m.updateHUD()
	m.log.Debug("round %d: %s", m.round, m.question.Prompt.Text)
}

func (m *Machine) onTick(int, bool) {
	m.updateHUD()
}

func (m *Machine) onTimeout() {
	if m.state != StateAwaitingAnswer || m.paused {
		return
	}
	m.state = StateGrading
	out := m.tracker.RecordTimeout()
	m.record(m.ctx, models.AnswerRecord{Correct: false, Answered: false})
	m.grade(m.ctx, FeedbackTimeout, -1, out)
}

func (m *Machine) grade(ctx context.Context, kind FeedbackKind, selected int, out progress.Outcome) {
	m.presenter.ShowFeedback(Feedback{
		Kind:         kind,
		Message:      feedbackMessage(kind, m.question),
		Answer:       m.question.Answer.String(),
		CorrectIndex: m.question.OptionIndex(m.question.Answer),
		Selected:     selected,
	})
	if out.LeveledUp {
		m.log.Info("level up: level=%d, time_limit=%.1fs", m.tracker.Level, m.tracker.BaseTimeLimit)
		m.presenter.NotifyLevelUp(m.tracker.Level)
	}
	if out.BeatHighScore {
		m.presenter.NotifyHighScore()
	}
	m.updateHUD()

	if out.GameOver {
		m.finish(ctx)
		return
	}

	delay := m.incorrectDelay
	if kind == FeedbackCorrect {
		delay = m.correctDelay
	}
	round := m.round
	m.advance = m.sched.AfterFunc(delay, func() { m.advanceFrom(round) })
}

// advanceFrom is the delayed transition out of Grading for round.
func (m *Machine) advanceFrom(round int) {
	if round != m.round || m.state != StateGrading {
		return
	}
	m.advance = nil
	m.nextRound()
}

func (m *Machine) finish(ctx context.Context) {
	m.halt()
	m.state = StateGameOver
	m.paused = false

	t := m.tracker
	summary := Summary{
		Mode:         m.mode.String(),
		Level:        t.Level,
		Correct:      t.Correct,
		Incorrect:    t.Incorrect,
		TotalAnswers: t.TotalAnswers,
		Accuracy:     t.Accuracy(),
		AverageTime:  t.AverageTimeSeconds(),
		HighScore:    max(t.PreviousHighScore(), t.Correct),
		NewHighScore: t.Correct > t.PreviousHighScore(),
	}

	if m.store != nil {
		result := models.GameResult{
			Mode:         m.mode.String(),
			Board:        m.mode.Board(),
			Score:        t.Correct,
			Level:        t.Level,
			Accuracy:     summary.Accuracy,
			AverageTime:  summary.AverageTime,
			TotalAnswers: t.TotalAnswers,
			FinishedAt:   m.sched.Now(),
		}
		if p, err := m.store.FinishGame(ctx, result); err != nil {
			m.log.Warn("failed to finalize profile: %v", err)
		} else {
			summary.HighScore = p.HighScore
		}
	}

	m.summary = &summary
	m.log.WithField("session", m.sessionID).
		Info("game over: score=%d, level=%d, accuracy=%.1f", summary.Correct, summary.Level, summary.Accuracy)
	m.presenter.ShowGameOver(summary)
}

// halt cancels every pending callback.
func (m *Machine) halt() {
	m.countdown.Stop()
	m.cancelAdvance()
}

func (m *Machine) cancelAdvance() {
	if m.advance != nil {
		m.advance.Stop()
		m.advance = nil
	}
}

func (m *Machine) record(ctx context.Context, rec models.AnswerRecord) {
	if m.store == nil {
		return
	}
	if err := m.store.RecordAnswer(ctx, rec); err != nil {
		m.log.Warn("failed to record answer: %v", err)
	}
}

func (m *Machine) updateHUD() {
	if m.tracker == nil {
		return
	}
	m.presenter.UpdateHUD(m.hud())
}

func (m *Machine) hud() HUD {
	return HUD{
		Lives:       m.tracker.Lives,
		Level:       m.tracker.Level,
		Correct:     m.tracker.Correct,
		Incorrect:   m.tracker.Incorrect,
		AverageTime: m.tracker.AverageTimeSeconds(),
		TimeLeft:    m.countdown.Left(),
		Warning:     m.countdown.Warning(),
		Paused:      m.paused,
	}
}

func feedbackMessage(kind FeedbackKind, q quiz.Question) string {
	switch kind {
	case FeedbackCorrect:
		return fmt.Sprintf("✓ CORRECT! %s", q.Reveal())
	case FeedbackTimeout:
		return fmt.Sprintf("⏱ TIME UP! %s", q.Reveal())
	default:
		return fmt.Sprintf("✗ WRONG! %s", q.Reveal())
	}
}
