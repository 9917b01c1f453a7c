package game

import (
	"errors"
	"math"
	"testing"
)

// fixedSource always returns the same value, clamped to the requested range.
type fixedSource int

func (f fixedSource) Between(min, max int) int {
	n := int(f)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func newSession(t *testing.T, p Profile, hints bool, secret int) *Session {
	t.Helper()
	s, err := New(p, hints, fixedSource(secret))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

func TestNewDrawsSecretWithinProfile(t *testing.T) {
	s := newSession(t, Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 3}, true, 7)
	if s.Secret != 7 {
		t.Fatalf("expected secret 7, got %d", s.Secret)
	}
	if s.Outcome != InProgress {
		t.Fatalf("expected in_progress, got %s", s.Outcome)
	}
	if len(s.ID) != 16 {
		t.Fatalf("expected 16-char id, got %q", s.ID)
	}
}

func TestNewRejectsInvalidProfiles(t *testing.T) {
	cases := []Profile{
		{Name: "equal", Min: 5, Max: 5, MaxAttempts: 1},
		{Name: "inverted", Min: 10, Max: 1, MaxAttempts: 1},
		{Name: "no-attempts", Min: 1, Max: 10, MaxAttempts: 0},
		{Name: "wide", Min: 0, Max: math.MaxInt, MaxAttempts: 3},
		{Name: "widest", Min: math.MinInt, Max: math.MaxInt, MaxAttempts: 3},
	}
	for _, p := range cases {
		if _, err := New(p, true, fixedSource(1)); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("%s: expected ErrInvalidProfile, got %v", p.Name, err)
		}
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		in      string
		want    Input
		wantErr error
	}{
		{in: "7", want: Input{Value: 7}},
		{in: "  10 ", want: Input{Value: 10}},
		{in: "1", want: Input{Value: 1}},
		{in: "quit", want: Input{Quit: true}},
		{in: "QUIT", want: Input{Quit: true}},
		{in: "QuIt", want: Input{Quit: true}},
		{in: " quit", wantErr: ErrInvalidNumber},
		{in: "quit\n", wantErr: ErrInvalidNumber},
		{in: "abc", wantErr: ErrInvalidNumber},
		{in: "", wantErr: ErrInvalidNumber},
		{in: "7.5", wantErr: ErrInvalidNumber},
		{in: "quitter", wantErr: ErrInvalidNumber},
		{in: "0", wantErr: ErrOutOfRange},
		{in: "11", wantErr: ErrOutOfRange},
		{in: "-3", wantErr: ErrOutOfRange},
	}
	for _, tt := range tests {
		got, err := ParseGuess(tt.in, 1, 10)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseGuess(%q): expected %v, got %v", tt.in, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseGuess(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseGuess(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGuessConsumesExactlyOneAttemptPerValidGuess(t *testing.T) {
	p := Profile{Name: "t", Min: 1, Max: 20, MaxAttempts: 100}
	for g := p.Min; g <= p.Max; g++ {
		s := newSession(t, p, true, 5)
		fb, err := s.Guess(g)
		if err != nil {
			t.Fatalf("Guess(%d) returned error: %v", g, err)
		}
		if s.AttemptsUsed != 1 || fb.AttemptsUsed != 1 {
			t.Fatalf("Guess(%d): expected 1 attempt used, got %d", g, s.AttemptsUsed)
		}
	}
}

func TestGuessOutOfRangeKeepsAttempts(t *testing.T) {
	s := newSession(t, Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 2}, true, 7)
	for _, g := range []int{0, 11, -100} {
		if _, err := s.Guess(g); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Guess(%d): expected ErrOutOfRange, got %v", g, err)
		}
	}
	if s.AttemptsUsed != 0 {
		t.Fatalf("expected 0 attempts used, got %d", s.AttemptsUsed)
	}
}

func TestGuessHints(t *testing.T) {
	p := Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 10}
	tests := []struct {
		hints bool
		guess int
		want  Hint
	}{
		{true, 3, HintTooLow},
		{true, 9, HintTooHigh},
		{true, 7, HintCorrect},
		{false, 3, HintTryAgain},
		{false, 9, HintTryAgain},
		{false, 7, HintCorrect},
	}
	for _, tt := range tests {
		s := newSession(t, p, tt.hints, 7)
		fb, err := s.Guess(tt.guess)
		if err != nil {
			t.Fatalf("Guess(%d) returned error: %v", tt.guess, err)
		}
		if fb.Hint != tt.want {
			t.Fatalf("hints=%v guess=%d: expected %s, got %s", tt.hints, tt.guess, tt.want, fb.Hint)
		}
	}
}

func TestGuessWinsOnFirstAttempt(t *testing.T) {
	s := newSession(t, Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 1}, true, 7)
	fb, err := s.Guess(7)
	if err != nil {
		t.Fatalf("Guess returned error: %v", err)
	}
	if fb.Outcome != Won || s.Outcome != Won {
		t.Fatalf("expected won, got %s", s.Outcome)
	}
	if s.AttemptsUsed != 1 {
		t.Fatalf("expected 1 attempt, got %d", s.AttemptsUsed)
	}
	if _, err := s.Guess(7); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished after win, got %v", err)
	}
}

func TestGuessExhaustsAttempts(t *testing.T) {
	s := newSession(t, Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 2}, true, 7)

	fb, _ := s.Guess(3)
	if fb.Outcome != InProgress || fb.Hint != HintTooLow || fb.Remaining != 1 {
		t.Fatalf("unexpected first feedback: %+v", fb)
	}
	fb, _ = s.Guess(9)
	if fb.Outcome != Exhausted || fb.Hint != HintTooHigh || fb.Remaining != 0 {
		t.Fatalf("unexpected second feedback: %+v", fb)
	}
	if !s.Finished() {
		t.Fatal("expected session to be finished")
	}
}

func TestQuit(t *testing.T) {
	s := newSession(t, Profile{Name: "t", Min: 1, Max: 10, MaxAttempts: 3}, true, 7)
	if _, err := s.Guess(2); err != nil {
		t.Fatalf("Guess returned error: %v", err)
	}
	if err := s.Quit(); err != nil {
		t.Fatalf("Quit returned error: %v", err)
	}
	if s.Outcome != GaveUp {
		t.Fatalf("expected gave_up, got %s", s.Outcome)
	}
	if s.AttemptsUsed != 1 {
		t.Fatalf("quit must not consume an attempt, got %d", s.AttemptsUsed)
	}
	if err := s.Quit(); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished on second quit, got %v", err)
	}
}
