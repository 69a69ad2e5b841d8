package sportsref

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNoData is reported by typed accessors when the underlying raw field
// was never populated, typically because the game has not been played yet.
// It is deliberately distinct from a real zero.
var ErrNoData = errors.New("no data to report")

// ErrGameNotFound is reported by date lookups that match no game.
var ErrGameNotFound = errors.New("no games found for requested date")

// Location indicates where a game was played relative to the team.
type Location int

const (
	Home Location = iota
	Away
	Neutral
)

func (l Location) String() string {
	switch l {
	case Away:
		return "Away"
	case Neutral:
		return "Neutral"
	default:
		return "Home"
	}
}

// Outcome indicates whether the team won or lost.
type Outcome int

const (
	Win Outcome = iota
	Loss
)

func (o Outcome) String() string {
	if o == Loss {
		return "Loss"
	}
	return "Win"
}

// Int coerces a raw value to a base-10 integer. Comma grouping is accepted.
func Int(v Value) (int, error) {
	if !v.Present() || v.text == "" {
		return 0, ErrNoData
	}
	n, err := strconv.Atoi(strings.ReplaceAll(v.text, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("malformed integer field %q: %w", v.text, err)
	}
	return n, nil
}

// IntPrefix coerces a labeled raw value such as "Attendance: 18,042",
// stripping the configured textual prefix before parsing.
func IntPrefix(v Value, prefix string) (int, error) {
	if !v.Present() {
		return 0, ErrNoData
	}
	stripped := Value{text: strings.TrimSpace(strings.TrimPrefix(v.text, prefix)), ok: true}
	return Int(stripped)
}

// Float coerces a raw value to a float. The value keeps the source field's
// native scale: shooting percentages are 0-100, save percentages 0-1.
func Float(v Value) (float64, error) {
	if !v.Present() || v.text == "" {
		return 0, ErrNoData
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed float field %q: %w", v.text, err)
	}
	return f, nil
}

// ParseLocation maps the schedule's location marker: '@' means an away
// game, anything else (usually blank) a home game.
func ParseLocation(v Value) (Location, error) {
	if !v.Present() {
		return Home, ErrNoData
	}
	if strings.TrimSpace(v.text) == "@" {
		return Away, nil
	}
	return Home, nil
}

// ParseOutcome maps the schedule's result marker: 'L' (any case) means a
// loss, anything else a win.
func ParseOutcome(v Value) (Outcome, error) {
	if !v.Present() {
		return Win, ErrNoData
	}
	if strings.EqualFold(strings.TrimSpace(v.text), "l") {
		return Loss, nil
	}
	return Win, nil
}

// Ratio computes a derived percentage such as saves over shots faced,
// rounded to 3 decimal places. A zero divisor yields exactly 0.0; a team
// that faced no shots saved none of them.
func Ratio(made, opportunities int) float64 {
	if opportunities == 0 {
		return 0.0
	}
	return math.Round(float64(made)/float64(opportunities)*1000) / 1000
}

// SideSum totals one team's share of a cell list spanning both teams'
// player rows. The away side occupies the first boundary entries, the home
// side the remainder. Cells that do not parse as integers (blank
// placeholders for players without the stat) are skipped.
func SideSum(v Value, boundary int, side Location) (int, error) {
	if !v.Present() {
		return 0, ErrNoData
	}
	cells := v.cells
	if boundary < 0 {
		boundary = 0
	}
	if boundary > len(cells) {
		boundary = len(cells)
	}
	subset := cells[:boundary]
	if side == Home {
		subset = cells[boundary:]
	}
	sum := 0
	for _, cell := range subset {
		n, err := strconv.Atoi(cell)
		if err != nil {
			continue
		}
		sum += n
	}
	return sum, nil
}
