package sportsref

import (
	"regexp"
	"strings"

	"github.com/DoubleBarrelBirds/sportsipy/lib/htmlutil"
	"github.com/PuerkitoBio/goquery"
)

// Value is one raw extraction result: plain text, a list of cell texts, or
// a retained element for name tags. The zero Value reports no data.
type Value struct {
	text  string
	cells []string
	tag   *goquery.Selection
	ok    bool
}

func (v Value) Present() bool {
	return v.ok
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Cells() []string {
	return v.cells
}

func (v Value) Tag() *goquery.Selection {
	return v.tag
}

// Record holds the uncoerced field values extracted from one page fragment,
// plus any row counts recorded during the build (e.g. the away-side skater
// count that splits per-player cell lists between the two teams). Values
// are written once by BuildRecord, counts once by the sport package's
// parse step via SetCount; after that the record is read-only.
type Record struct {
	values map[string]Value
	counts map[string]int
}

func (r Record) Value(name string) Value {
	return r.values[name]
}

func (r Record) Count(name string) int {
	return r.counts[name]
}

// SetCount records a row count alongside the extracted values. It belongs
// to the build phase only; accessors treat counts as fixed.
func (r Record) SetCount(name string, n int) {
	r.counts[name] = n
}

// Empty reports whether the record carries no data at all, which is the
// designed result for games that have not been played yet.
func (r Record) Empty() bool {
	for _, v := range r.values {
		if v.ok {
			return false
		}
	}
	return true
}

// BuildRecord applies every scheme entry to the fragment and collects the
// raw values. A nil or empty fragment (the page could not be fetched)
// yields a record with every field absent rather than an error. Scheme
// mismatches propagate.
func BuildRecord(frag *goquery.Selection, scheme Scheme) (Record, error) {
	rec := Record{
		values: make(map[string]Value, len(scheme)),
		counts: map[string]int{},
	}
	if frag == nil || frag.Length() == 0 {
		return rec, nil
	}

	// game info blocks are split into lines once per selector so the
	// playoff-round shift applies uniformly to all fields of a block
	infoLines := map[string][]string{}
	infoShift := map[string]int{}

	for name, field := range scheme {
		switch field.Parse {
		case ParseComputed:
			continue
		case ParseGameInfo:
			lines, ok := infoLines[field.Selector]
			if !ok {
				if text := htmlutil.BlockText(frag.Find(field.Selector)); text != "" {
					lines = strings.Split(text, "\n")
				}
				infoLines[field.Selector] = lines
				infoShift[field.Selector] = playoffShift(lines)
			}
			rec.values[name] = infoLine(lines, field.Index, infoShift[field.Selector])
		case ParseNameTag:
			value, err := nameTag(frag, name, field)
			if err != nil {
				return rec, err
			}
			rec.values[name] = value
		case ParseCellList:
			matched := resolve(frag, field)
			if matched.Length() == 0 {
				continue
			}
			rec.values[name] = Value{cells: cellTexts(matched), ok: true}
		case ParseBoxscoreLink:
			matched := resolve(frag, field)
			if matched.Length() == 0 {
				continue
			}
			markup, err := goquery.OuterHtml(matched.First())
			if err != nil {
				return rec, err
			}
			rec.values[name] = Value{text: BoxscoreID(markup), ok: true}
		default:
			value, err := extractValue(frag, name, field)
			if err != nil {
				return rec, err
			}
			if !value.ok {
				continue
			}
			rec.values[name] = value
		}
	}
	return rec, nil
}

func nameTag(frag *goquery.Selection, name string, field Field) (Value, error) {
	matched := resolve(frag, field)
	n := matched.Length()
	if n == 0 {
		return Value{}, nil
	}
	if field.Index < 0 || field.Index >= n {
		return Value{}, &SchemeError{
			Field:    name,
			Selector: field.Selector,
			Index:    field.Index,
			Matches:  n,
		}
	}
	return Value{tag: matched.Eq(field.Index), ok: true}, nil
}

// playoffRounds are the labels a playoff page inserts as the second line of
// the game info block, pushing every later line down by one.
var playoffRounds = []string{
	"eastern first round",
	"western first round",
	"eastern second round",
	"western second round",
	"eastern conference finals",
	"western conference finals",
	"stanley cup final",
}

func playoffShift(lines []string) int {
	if len(lines) < 2 {
		return 0
	}
	second := strings.ToLower(lines[1])
	for _, round := range playoffRounds {
		if strings.Contains(second, round) {
			return 1
		}
	}
	return 0
}

// infoLine picks one line of a game info block. The date and time occupy
// line 0 and keep their index on playoff pages; every later line shifts
// past the round label. A line index beyond the block is absent data, not
// an error: shorter blocks simply omit optional facts.
func infoLine(lines []string, index, shift int) Value {
	if index >= 1 {
		index += shift
	}
	if index < 0 || index >= len(lines) {
		return Value{}
	}
	return Value{text: lines[index], ok: true}
}

var (
	boxscorePrefix = regexp.MustCompile(`(?s).*/boxscores/`)
	boxscoreSuffix = regexp.MustCompile(`(?s)\.html.*`)
	teamPrefix     = regexp.MustCompile(`(?s).*/teams/`)
	teamSuffix     = regexp.MustCompile(`(?s)/.*`)
)

// BoxscoreID strips an anchor's markup down to the bare boxscore
// identifier, e.g. '.../boxscores/201806070VEG.html' -> '201806070VEG'.
func BoxscoreID(markup string) string {
	id := boxscorePrefix.ReplaceAllString(markup, "")
	id = boxscoreSuffix.ReplaceAllString(id, "")
	return strings.TrimSpace(id)
}

// Abbreviation derives a team's abbreviation from the team path embedded
// in its name tag, e.g. a href of '/teams/VEG/2018.html' -> 'VEG'.
func Abbreviation(tag *goquery.Selection) string {
	if tag == nil {
		return ""
	}
	markup, err := goquery.OuterHtml(tag)
	if err != nil {
		return ""
	}
	abbr := teamPrefix.ReplaceAllString(markup, "")
	return teamSuffix.ReplaceAllString(abbr, "")
}
