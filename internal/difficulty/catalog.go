// internal/difficulty/catalog.go
//
// Difficulty catalog management for the game engine.
//
// Responsibilities:
//   - Load profiles from a user-provided file or fall back to the embedded default.
//   - Keep catalog order for prompts ("easy, medium, hard").
//   - Case-insensitive lookup of a profile by name.
//
// File format (one profile per line):
//   name min max attempts
// Blank lines and lines starting with '#' are ignored. Every profile must
// satisfy game.Profile.Validate and names must be unique (case-insensitive).

package difficulty

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/robalobadob/diceguess/assets"
	"github.com/robalobadob/diceguess/internal/game"
)

// Catalog is an ordered, immutable set of difficulty profiles.
type Catalog struct {
	profiles []game.Profile
	byName   map[string]game.Profile // keyed by case-folded name
}

// Default loads the embedded catalog.
func Default() (*Catalog, error) {
	f, err := assets.OpenDifficulties()
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Load reads a catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads catalog lines from r.
// Returns an error naming the offending line, or if the catalog ends up empty.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]game.Profile)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		key := cases.Fold().String(p.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate difficulty %q", line, p.Name)
		}
		c.byName[key] = p
		c.profiles = append(c.profiles, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(c.profiles) == 0 {
		return nil, errors.New("difficulty: catalog is empty")
	}
	return c, nil
}

func parseLine(text string) (game.Profile, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return game.Profile{}, fmt.Errorf("expected 4 fields (name min max attempts), got %d", len(fields))
	}
	var nums [3]int
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Profile{}, fmt.Errorf("field %d: %w", i+2, err)
		}
		nums[i] = n
	}
	p := game.Profile{
		Name:        strings.ToLower(fields[0]),
		Min:         nums[0],
		Max:         nums[1],
		MaxAttempts: nums[2],
	}
	return p, p.Validate()
}

// Lookup finds a profile by name, ignoring case.
func (c *Catalog) Lookup(name string) (game.Profile, bool) {
	p, ok := c.byName[cases.Fold().String(name)]
	return p, ok
}

// Names returns profile names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.profiles))
	for i, p := range c.profiles {
		out[i] = p.Name
	}
	return out
}

// Profiles returns a copy of all profiles in catalog order.
func (c *Catalog) Profiles() []game.Profile {
	return append([]game.Profile(nil), c.profiles...)
}
