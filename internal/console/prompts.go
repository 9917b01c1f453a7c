package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/diceguess/internal/difficulty"
	"github.com/robalobadob/diceguess/internal/game"
)

// YesKeyword enables hints when answered to the hint question.
const YesKeyword = "yes"

// prompter wraps a LineIO and keeps the first write error, so the game
// loop reads as a sequence of messages.
type prompter struct {
	io  LineIO
	err error
}

func (p *prompter) say(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = p.io.WriteLine(fmt.Sprintf(format, args...))
}

func (p *prompter) ask(format string, args ...any) (string, error) {
	p.say(format, args...)
	if p.err != nil {
		return "", p.err
	}
	line, err := p.io.ReadLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

// readGuess prompts until the player types the quit keyword or an integer
// within [min, max]. Malformed input re-prompts and costs nothing.
func (p *prompter) readGuess(min, max int) (game.Input, error) {
	for {
		line, err := p.ask("What do you think the dice rolled value is from (%d to %d)? (Type '%s' to give up): ",
			min, max, game.QuitKeyword)
		if err != nil {
			return game.Input{}, err
		}
		in, err := game.ParseGuess(line, min, max)
		switch {
		case err == nil:
			return in, nil
		case errors.Is(err, game.ErrOutOfRange):
			p.say("Please enter a number between %d and %d.", min, max)
		default:
			p.say("Invalid input. Please enter a valid number or '%s' to give up.", game.QuitKeyword)
		}
	}
}

// chooseDifficulty prompts until the answer names a catalog profile.
func (p *prompter) chooseDifficulty(c *difficulty.Catalog) (game.Profile, error) {
	names := c.Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	for {
		line, err := p.ask("Choose a difficulty level (%s): ", strings.Join(names, ", "))
		if err != nil {
			return game.Profile{}, err
		}
		if prof, ok := c.Lookup(line); ok {
			return prof, nil
		}
		p.say("Invalid difficulty level. Please choose %s.", joinOr(quoted))
	}
}

// askHints reads one answer; only the yes keyword enables hints.
func (p *prompter) askHints() (bool, error) {
	line, err := p.ask("Would you like hints (too high/too low)? (%s/no): ", YesKeyword)
	if err != nil {
		return false, err
	}
	return game.MatchKeyword(line, YesKeyword), nil
}

// ReadGuess prompts on lio until it yields a valid guess or a quit request.
func ReadGuess(lio LineIO, min, max int) (game.Input, error) {
	p := &prompter{io: lio}
	return p.readGuess(min, max)
}

// ChooseDifficulty prompts on lio until a catalog profile is named.
func ChooseDifficulty(lio LineIO, c *difficulty.Catalog) (game.Profile, error) {
	p := &prompter{io: lio}
	return p.chooseDifficulty(c)
}

// AskHints asks once whether hints should be enabled.
func AskHints(lio LineIO) (bool, error) {
	p := &prompter{io: lio}
	return p.askHints()
}

// joinOr renders "a", "a or b", "a, b, or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
