package console

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/robalobadob/diceguess/internal/difficulty"
	"github.com/robalobadob/diceguess/internal/game"
)

// Options configures one console play-through.
type Options struct {
	// Classic skips difficulty and hint prompts and plays game.Classic with hints on.
	Classic bool
	// Catalog lists selectable difficulties. Required unless Classic is set.
	Catalog *difficulty.Catalog
	// Source draws the secret.
	Source game.Source
	Logger zerolog.Logger
}

// Play runs one session to completion: setup, then the guess loop until the
// player wins, gives up, or runs out of attempts.
//
// Read failures end the game and are returned alongside the session state
// reached so far (nil if the failure happened before the session existed).
func Play(lio LineIO, opts Options) (*game.Session, error) {
	p := &prompter{io: lio}
	logger := opts.Logger

	s, err := setup(p, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("session", s.ID).
		Str("difficulty", s.Profile.Name).
		Bool("hints", s.HintsEnabled).
		Msg("session started")

	// Wins and quits leave the loop early; only running the counter out
	// reaches "Game over!".
	early := false
loop:
	for s.AttemptsUsed < s.Profile.MaxAttempts {
		in, err := p.readGuess(s.Profile.Min, s.Profile.Max)
		if err != nil {
			return s, err
		}
		if in.Quit {
			_ = s.Quit()
			p.say("You gave up! The correct number was %d.", s.Secret)
			early = true
			break
		}

		fb, err := s.Guess(in.Value)
		if err != nil {
			return s, err
		}
		logger.Debug().
			Str("session", s.ID).
			Int("attempt", fb.AttemptsUsed).
			Str("hint", string(fb.Hint)).
			Msg("guess accepted")

		switch fb.Hint {
		case game.HintCorrect:
			p.say("Correct! You win!")
			early = true
			break loop
		case game.HintTooLow:
			p.say("Nope! Your guess is too low.")
		case game.HintTooHigh:
			p.say("Nope! Your guess is too high.")
		default:
			p.say("Nope! Try again.")
		}

		if fb.Outcome == game.Exhausted {
			p.say("Sorry, you've used all %d attempts. The correct number was %d.", s.Profile.MaxAttempts, s.Secret)
		} else {
			p.say("You have %d %s left.", fb.Remaining, plural(fb.Remaining, "attempt", "attempts"))
		}
	}
	if !early {
		p.say("Game over!")
	}

	logger.Debug().
		Str("session", s.ID).
		Str("outcome", string(s.Outcome)).
		Int("attempts", s.AttemptsUsed).
		Int("secret", s.Secret).
		Msg("session finished")
	return s, p.err
}

func setup(p *prompter, opts Options) (*game.Session, error) {
	if opts.Source == nil {
		return nil, errors.New("console: no random source")
	}
	if opts.Classic {
		s, err := game.New(game.Classic, true, opts.Source)
		if err != nil {
			return nil, err
		}
		p.say("Welcome to the Dice Guessing Game! You have %d attempts to guess the number between %d and %d.",
			s.Profile.MaxAttempts, s.Profile.Min, s.Profile.Max)
		return s, p.err
	}
	if opts.Catalog == nil {
		return nil, errors.New("console: no difficulty catalog")
	}

	p.say("Welcome to the Dice Guessing Game!")
	prof, err := p.chooseDifficulty(opts.Catalog)
	if err != nil {
		return nil, err
	}
	hints, err := p.askHints()
	if err != nil {
		return nil, err
	}
	s, err := game.New(prof, hints, opts.Source)
	if err != nil {
		return nil, err
	}
	p.say("Let's begin! You have %d attempts to guess the number between %d and %d.",
		s.Profile.MaxAttempts, s.Profile.Min, s.Profile.Max)
	return s, p.err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
