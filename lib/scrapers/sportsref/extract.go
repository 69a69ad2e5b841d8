package sportsref

import (
	"fmt"
	"strings"

	"github.com/DoubleBarrelBirds/sportsipy/lib/htmlutil"
	"github.com/PuerkitoBio/goquery"
)

// SchemeError reports a mismatch between a scheme entry and the actual page
// structure: the selector matched fewer elements than the configured index
// requires. It always indicates broken extraction config, never missing
// data, and must not be swallowed.
type SchemeError struct {
	Field    string
	Selector string
	Index    int
	Matches  int
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf(
		"scheme mismatch for field %q: selector %q matched %d elements, want index %d",
		e.Field, e.Selector, e.Matches, e.Index,
	)
}

// ParseField resolves a scheme field against a page fragment and returns
// its raw text. An empty match set returns an empty string: absent data is
// a normal outcome (a future game has no stats yet). An out-of-range index
// returns a *SchemeError.
func ParseField(sel *goquery.Selection, scheme Scheme, name string) (string, error) {
	field, ok := scheme[name]
	if !ok {
		return "", fmt.Errorf("no scheme entry for field %q", name)
	}
	value, err := extractValue(sel, name, field)
	return value.text, err
}

// extractValue keeps the distinction ParseField's string return folds
// away: a matched-but-blank cell (a home game's empty location marker) is
// present with empty text, while an unmatched selector is absent.
func extractValue(sel *goquery.Selection, name string, field Field) (Value, error) {
	matched := resolve(sel, field)
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
	return Value{text: htmlutil.CleanText(matched.Eq(field.Index).Text()), ok: true}, nil
}

func resolve(sel *goquery.Selection, field Field) *goquery.Selection {
	if field.Selector == WholeFragment {
		return sel
	}
	return sel.Find(field.Selector)
}

// cellTexts returns the trimmed text of every matched element, preserving
// document order and empty placeholder cells.
func cellTexts(matched *goquery.Selection) []string {
	cells := make([]string, 0, matched.Length())
	matched.Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}
