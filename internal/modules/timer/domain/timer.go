package domain

import (
	"fmt"
	"math"

	apperrors "studytimer/internal/platform/errors"
)

// MaxMinutes is the longest phase whose length in seconds fits an int.
const MaxMinutes = math.MaxInt / 60

type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseStudy Phase = "study"
	PhaseBreak Phase = "break"
)

// Label is the text shown above the countdown.
func (p Phase) Label() string {
	switch p {
	case PhaseStudy:
		return "Study time"
	case PhaseBreak:
		return "Break time"
	default:
		return ""
	}
}

// State is the countdown owned by a Timer. An idle state carries no
// durations.
type State struct {
	Phase            Phase
	RemainingSeconds int
	StudyMinutes     int
	BreakMinutes     int
}

func (s State) Active() bool {
	return s.Phase == PhaseStudy || s.Phase == PhaseBreak
}

// Display renders the remaining time as MM:SS.
func (s State) Display() string {
	return FormatClock(s.RemainingSeconds)
}

// Validate checks a state that is about to be entered directly, bypassing
// Start.
func (s State) Validate() error {
	if !s.Active() {
		return fmt.Errorf("%w: phase %q cannot be resumed", apperrors.ErrInvalidInput, s.Phase)
	}
	if s.RemainingSeconds <= 0 {
		return fmt.Errorf("%w: remaining seconds must be positive", apperrors.ErrInvalidInput)
	}
	if !validMinutes(s.StudyMinutes) || !validMinutes(s.BreakMinutes) {
		return fmt.Errorf("%w: durations must be between 1 and %d minutes", apperrors.ErrInvalidInput, MaxMinutes)
	}
	return nil
}

// Completion describes a phase that just reached zero.
type Completion struct {
	Finished     Phase
	Next         Phase
	StudyMinutes int
}

// Timer is the study -> break -> idle state machine. It holds no clock;
// callers drive it with one Tick per elapsed second.
type Timer struct {
	state State
}

func NewTimer() *Timer {
	return &Timer{state: State{Phase: PhaseIdle}}
}

func (t *Timer) State() State {
	return t.state
}

// Start enters the study phase. Durations outside 1..MaxMinutes leave the
// timer idle and report started=false without an error.
func (t *Timer) Start(studyMinutes, breakMinutes int) (bool, error) {
	if !validMinutes(studyMinutes) || !validMinutes(breakMinutes) {
		return false, nil
	}
	if t.state.Active() {
		return false, apperrors.ErrTimerActive
	}
	t.state = State{
		Phase:            PhaseStudy,
		RemainingSeconds: studyMinutes * 60,
		StudyMinutes:     studyMinutes,
		BreakMinutes:     breakMinutes,
	}
	return true, nil
}

// Resume enters s directly.
func (t *Timer) Resume(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if t.state.Active() {
		return apperrors.ErrTimerActive
	}
	t.state = s
	return nil
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the transition is applied before returning and ok is true.
func (t *Timer) Tick() (Completion, bool) {
	if !t.state.Active() {
		return Completion{}, false
	}
	if t.state.RemainingSeconds > 0 {
		t.state.RemainingSeconds--
	}
	if t.state.RemainingSeconds > 0 {
		return Completion{}, false
	}

	done := Completion{Finished: t.state.Phase, StudyMinutes: t.state.StudyMinutes}
	if t.state.Phase == PhaseStudy {
		done.Next = PhaseBreak
		t.state.Phase = PhaseBreak
		t.state.RemainingSeconds = t.state.BreakMinutes * 60
		return done, true
	}
	done.Next = PhaseIdle
	t.state = State{Phase: PhaseIdle}
	return done, true
}

func validMinutes(m int) bool {
	return m > 0 && m <= MaxMinutes
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not
// wrapped into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
