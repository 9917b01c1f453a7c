// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create new sessions from a validated Profile and a Random Source.
//   - Parse raw player input into a guess or a quit request.
//   - Apply guesses: bounds check, attempt accounting, hint selection.
//   - Track state transitions: in progress → won/gave up/exhausted.
//
// The engine never reads or writes text; console and HTTP front-ends
// drive it one step at a time.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// QuitKeyword gives up the current session when typed instead of a number.
const QuitKeyword = "quit"

var (
	// ErrInvalidNumber indicates the input could not be parsed as an integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrOutOfRange indicates a parsed guess lies outside the session bounds.
	ErrOutOfRange = errors.New("guess out of range")
	// ErrFinished indicates the session already reached a final outcome.
	ErrFinished = errors.New("game finished")
	// ErrInvalidProfile indicates a profile violates Min < Max or MaxAttempts >= 1.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Validate checks the profile invariants.
func (p Profile) Validate() error {
	if p.Min >= p.Max {
		return fmt.Errorf("%w: %q min %d must be below max %d", ErrInvalidProfile, p.Name, p.Min, p.Max)
	}
	// Sources draw from Max-Min+1 values, which must fit in an int.
	if span := p.Max - p.Min; span < 0 || span == math.MaxInt {
		return fmt.Errorf("%w: %q range %d..%d is too wide", ErrInvalidProfile, p.Name, p.Min, p.Max)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: %q needs at least one attempt", ErrInvalidProfile, p.Name)
	}
	return nil
}

// Contains reports whether n lies within [Min, Max].
func (p Profile) Contains(n int) bool { return p.Min <= n && n <= p.Max }

// New constructs a session for p, drawing the secret once from src.
func New(p Profile, hints bool, src Source) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:           randomID(),
		Profile:      p,
		Secret:       src.Between(p.Min, p.Max),
		HintsEnabled: hints,
		Outcome:      InProgress,
	}, nil
}

// MatchKeyword reports whether text equals keyword, ignoring case only.
// Surrounding space is significant: " quit" is not the quit keyword.
func MatchKeyword(text, keyword string) bool {
	fold := cases.Fold()
	return fold.String(text) == fold.String(keyword)
}

// ParseGuess turns a raw line into an Input.
//
// Rules:
//   - The quit keyword (any case) yields Input{Quit: true}.
//   - Anything that is not an integer yields ErrInvalidNumber.
//   - Integers outside [min, max] yield ErrOutOfRange.
func ParseGuess(text string, min, max int) (Input, error) {
	if MatchKeyword(text, QuitKeyword) {
		return Input{Quit: true}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Input{}, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	if n < min || n > max {
		return Input{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, min, max)
	}
	return Input{Value: n}, nil
}

// Guess applies an in-range guess, mutating the session.
//
// Out-of-range guesses are rejected without consuming an attempt.
// State transitions:
//   - Guess equals the secret → Won.
//   - Otherwise, AttemptsUsed reaching MaxAttempts → Exhausted.
func (s *Session) Guess(n int) (Feedback, error) {
	if s.Finished() {
		return Feedback{}, ErrFinished
	}
	if !s.Profile.Contains(n) {
		return Feedback{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, s.Profile.Min, s.Profile.Max)
	}

	s.AttemptsUsed++
	hint := s.hintFor(n)
	switch {
	case hint == HintCorrect:
		s.Outcome = Won
	case s.AttemptsUsed >= s.Profile.MaxAttempts:
		s.Outcome = Exhausted
	}
	return Feedback{
		Hint:         hint,
		Outcome:      s.Outcome,
		AttemptsUsed: s.AttemptsUsed,
		Remaining:    s.Remaining(),
	}, nil
}

// Quit gives up the session. Quitting never counts as an attempt.
func (s *Session) Quit() error {
	if s.Finished() {
		return ErrFinished
	}
	s.Outcome = GaveUp
	return nil
}

// Finished reports whether the session reached a final outcome.
func (s *Session) Finished() bool { return s.Outcome != InProgress }

// Remaining returns the number of attempts left.
func (s *Session) Remaining() int { return s.Profile.MaxAttempts - s.AttemptsUsed }

func (s *Session) hintFor(n int) Hint {
	switch {
	case n == s.Secret:
		return HintCorrect
	case !s.HintsEnabled:
		return HintTryAgain
	case n < s.Secret:
		return HintTooLow
	default:
		return HintTooHigh
	}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
