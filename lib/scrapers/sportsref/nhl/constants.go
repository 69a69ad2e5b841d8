package nhl

import (
	"github.com/DoubleBarrelBirds/sportsipy/lib/scrapers/sportsref"
)

const (
	boxscoreURL  = "https://www.hockey-reference.com/boxscores/%s.html"
	boxscoresURL = "https://www.hockey-reference.com/boxscores/?month=%d&day=%d&year=%d"

	gameInfoBlock = `div[class="scorebox_meta"]`

	// the away team's tables precede the home team's, so the first match
	// is always the away side
	skaterTables = `table[id$="_skaters"]`
	goalieTables = `table[id$="_goalies"]`
	dayGameTable = `table[class="teams"]`
	teamLinks    = `td a[href*="/teams/"]`
	gamelinkCell = `td[class="right gamelink"] a`

	awaySkaters = "away_skaters"
	awayGoalies = "away_goalies"
)

// boxscoreScheme maps each boxscore field to its place on the page. Team
// totals live in the table footers with the away table first (index 0) and
// the home table second (index 1). Stats the page only reports per player
// are captured as cell lists spanning both teams and split at the away
// roster boundary during coercion.
var boxscoreScheme = sportsref.Scheme{
	"date":       {Selector: gameInfoBlock, Index: 0, Parse: sportsref.ParseGameInfo},
	"time":       {Selector: gameInfoBlock, Index: 0, Parse: sportsref.ParseGameInfo},
	"arena":      {Selector: gameInfoBlock, Index: 1, Parse: sportsref.ParseGameInfo},
	"attendance": {Selector: gameInfoBlock, Index: 2, Parse: sportsref.ParseGameInfo},
	"duration":   {Selector: gameInfoBlock, Index: 3, Parse: sportsref.ParseGameInfo},

	"away_name": {Selector: `a[itemprop="name"]`, Index: 0, Parse: sportsref.ParseNameTag},
	"home_name": {Selector: `a[itemprop="name"]`, Index: 1, Parse: sportsref.ParseNameTag},

	"away_goals":                {Selector: `tfoot td[data-stat="goals"]`, Index: 0},
	"home_goals":                {Selector: `tfoot td[data-stat="goals"]`, Index: 1},
	"away_assists":              {Selector: `tfoot td[data-stat="assists"]`, Index: 0},
	"home_assists":              {Selector: `tfoot td[data-stat="assists"]`, Index: 1},
	"away_points":               {Selector: `tfoot td[data-stat="points"]`, Index: 0},
	"home_points":               {Selector: `tfoot td[data-stat="points"]`, Index: 1},
	"away_penalties_in_minutes": {Selector: `tfoot td[data-stat="pen_min"]`, Index: 0},
	"home_penalties_in_minutes": {Selector: `tfoot td[data-stat="pen_min"]`, Index: 1},
	"away_even_strength_goals":  {Selector: `tfoot td[data-stat="goals_ev"]`, Index: 0},
	"home_even_strength_goals":  {Selector: `tfoot td[data-stat="goals_ev"]`, Index: 1},
	"away_power_play_goals":     {Selector: `tfoot td[data-stat="goals_pp"]`, Index: 0},
	"home_power_play_goals":     {Selector: `tfoot td[data-stat="goals_pp"]`, Index: 1},
	"away_short_handed_goals":   {Selector: `tfoot td[data-stat="goals_sh"]`, Index: 0},
	"home_short_handed_goals":   {Selector: `tfoot td[data-stat="goals_sh"]`, Index: 1},
	"away_shots_on_goal":        {Selector: `tfoot td[data-stat="shots"]`, Index: 0},
	"home_shots_on_goal":        {Selector: `tfoot td[data-stat="shots"]`, Index: 1},
	"away_shooting_percentage":  {Selector: `tfoot td[data-stat="shot_pct"]`, Index: 0},
	"home_shooting_percentage":  {Selector: `tfoot td[data-stat="shot_pct"]`, Index: 1},

	"even_strength_assists": {Selector: `tbody td[data-stat="assists_ev"]`, Parse: sportsref.ParseCellList},
	"power_play_assists":    {Selector: `tbody td[data-stat="assists_pp"]`, Parse: sportsref.ParseCellList},
	"short_handed_assists":  {Selector: `tbody td[data-stat="assists_sh"]`, Parse: sportsref.ParseCellList},
	"game_winning_goals":    {Selector: `tbody td[data-stat="goals_gw"]`, Parse: sportsref.ParseCellList},
	"saves":                 {Selector: `tbody td[data-stat="saves"]`, Parse: sportsref.ParseCellList},
	"shutouts":              {Selector: `tbody td[data-stat="shutouts"]`, Parse: sportsref.ParseCellList},
}
