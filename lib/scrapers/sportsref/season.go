package sportsref

import "time"

// SeasonYear returns the year a season in progress is labeled with when the
// caller does not supply one. Seasons span two calendar years and take the
// later one as their label, so once the rollover month is reached the new
// season's pages are live and the label moves forward.
func SeasonYear(now time.Time, rollover time.Month) int {
	if now.Month() >= rollover {
		return now.Year() + 1
	}
	return now.Year()
}
