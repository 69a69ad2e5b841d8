// Package sportsref implements the scheme-driven extraction engine shared
// by the per-sport scrapers. A scheme maps record field names to CSS
// selectors; the engine resolves each field against a parsed page fragment
// and produces a raw record that the sport packages coerce into typed
// statistics.
package sportsref

// SpecialParse marks fields whose value cannot be resolved by plain
// selector+index extraction.
type SpecialParse int

const (
	ParseNone SpecialParse = iota
	// ParseGameInfo reads one line out of a newline-separated info block
	// (date, venue, attendance, duration). Playoff pages insert a round
	// label as the second line, shifting every line after the first.
	ParseGameInfo
	// ParseNameTag retains the matched element itself so both the display
	// name (text) and the team abbreviation (href path) can be derived
	// from it.
	ParseNameTag
	// ParseCellList captures the text of every matched cell, for stats
	// spread across per-player rows of both teams.
	ParseCellList
	// ParseBoxscoreLink extracts a bare boxscore identifier from the
	// matched anchor's markup.
	ParseBoxscoreLink
	// ParseComputed fields are derived from other fields and skipped by
	// the record builder.
	ParseComputed
)

// WholeFragment is the selector marker meaning the record's own fragment is
// the matched set.
const WholeFragment = ""

type Field struct {
	Selector string
	Index    int
	Parse    SpecialParse
}

// Scheme is the per-record-type mapping from field name to selector. It is
// defined once by each sport package and never mutated.
type Scheme map[string]Field
