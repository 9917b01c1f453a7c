// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Profile: immutable difficulty parameters (range + attempt budget).
//   - Outcome: lifecycle of a session (in progress → won/gave up/exhausted).
//   - Hint: feedback for a single accepted guess.
//   - Input: a validated guess or a quit request.
//   - Session: state for a single in-progress or finished game.

package game

// Profile describes one difficulty level.
// Invariants: Min < Max and MaxAttempts >= 1 (see Profile.Validate).
type Profile struct {
	Name        string `json:"name"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	MaxAttempts int    `json:"maxAttempts"`
}

// Classic is the single hardcoded profile used when difficulty selection is skipped.
var Classic = Profile{Name: "classic", Min: 1, Max: 100, MaxAttempts: 5}

// Outcome is the state of a session.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	GaveUp     Outcome = "gave_up"
	Exhausted  Outcome = "exhausted"
)

// Hint is the feedback for one accepted guess.
// Possible values:
//   - "correct":   guess matched the secret.
//   - "too_low":   guess < secret (hints enabled).
//   - "too_high":  guess > secret (hints enabled).
//   - "try_again": wrong guess with hints disabled.
type Hint string

const (
	HintCorrect  Hint = "correct"
	HintTooLow   Hint = "too_low"
	HintTooHigh  Hint = "too_high"
	HintTryAgain Hint = "try_again"
)

// Input is a parsed line of player input: either a guess or a quit request.
type Input struct {
	Value int
	Quit  bool
}

// Feedback reports the result of a single accepted guess.
type Feedback struct {
	Hint         Hint    `json:"hint"`
	Outcome      Outcome `json:"outcome"`
	AttemptsUsed int     `json:"attemptsUsed"`
	Remaining    int     `json:"remaining"`
}

// Session holds the state of a single game.
type Session struct {
	ID           string  // Unique session identifier (random hex string).
	Profile      Profile // Difficulty the session was started with.
	AttemptsUsed int     // Accepted guesses so far.
	Secret       int     // Drawn once at creation, within [Min, Max].
	HintsEnabled bool    // Directional feedback instead of "try again".
	Outcome      Outcome
}
