package sportsref

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DataRows returns the data rows of a stats table in document order,
// skipping the header separator rows repeated throughout long tables.
func DataRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if strings.Contains(row.AttrOr("class", ""), "thead") {
			return
		}
		rows = append(rows, row)
	})
	return rows
}

// SameDay reports whether two times fall on the same calendar date,
// ignoring the time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
