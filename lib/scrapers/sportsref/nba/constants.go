package nba

import (
	"time"

	"github.com/DoubleBarrelBirds/sportsipy/lib/scrapers/sportsref"
)

const (
	scheduleURL = "https://www.basketball-reference.com/teams/%s/%d/gamelog/"

	scheduleTable      = "table#tgl_basic"
	playoffScheduleDiv = "div#all_tgl_basic_playoffs"

	// new season pages go live in October; from September on, "current
	// season" means the upcoming one
	seasonRollover = time.September
)

// scheduleScheme maps every schedule field to its cell in a game log row.
// The opponent columns mirror the team columns with an opp_ data-stat
// prefix.
var scheduleScheme = sportsref.Scheme{
	"game":     {Selector: `th[data-stat="g"]`},
	"date":     {Selector: `td[data-stat="date_game"]`},
	"boxscore": {Selector: `td[data-stat="box_score_text"]`, Parse: sportsref.ParseBoxscoreLink},
	"location": {Selector: `td[data-stat="game_location"]`},
	"opponent_abbr": {Selector: `td[data-stat="opp_id"]`},
	"result":        {Selector: `td[data-stat="game_result"]`},

	"points_scored":  {Selector: `td[data-stat="pts"]`},
	"points_allowed": {Selector: `td[data-stat="opp_pts"]`},

	"field_goals":                       {Selector: `td[data-stat="fg"]`},
	"field_goal_attempts":               {Selector: `td[data-stat="fga"]`},
	"field_goal_percentage":             {Selector: `td[data-stat="fg_pct"]`},
	"three_point_field_goals":           {Selector: `td[data-stat="fg3"]`},
	"three_point_field_goal_attempts":   {Selector: `td[data-stat="fg3a"]`},
	"three_point_field_goal_percentage": {Selector: `td[data-stat="fg3_pct"]`},
	"free_throws":                       {Selector: `td[data-stat="ft"]`},
	"free_throw_attempts":               {Selector: `td[data-stat="fta"]`},
	"free_throw_percentage":             {Selector: `td[data-stat="ft_pct"]`},
	"offensive_rebounds":                {Selector: `td[data-stat="orb"]`},
	"total_rebounds":                    {Selector: `td[data-stat="trb"]`},
	"assists":                           {Selector: `td[data-stat="ast"]`},
	"steals":                            {Selector: `td[data-stat="stl"]`},
	"blocks":                            {Selector: `td[data-stat="blk"]`},
	"turnovers":                         {Selector: `td[data-stat="tov"]`},
	"personal_fouls":                    {Selector: `td[data-stat="pf"]`},

	"opp_field_goals":                       {Selector: `td[data-stat="opp_fg"]`},
	"opp_field_goal_attempts":               {Selector: `td[data-stat="opp_fga"]`},
	"opp_field_goal_percentage":             {Selector: `td[data-stat="opp_fg_pct"]`},
	"opp_three_point_field_goals":           {Selector: `td[data-stat="opp_fg3"]`},
	"opp_three_point_field_goal_attempts":   {Selector: `td[data-stat="opp_fg3a"]`},
	"opp_three_point_field_goal_percentage": {Selector: `td[data-stat="opp_fg3_pct"]`},
	"opp_free_throws":                       {Selector: `td[data-stat="opp_ft"]`},
	"opp_free_throw_attempts":               {Selector: `td[data-stat="opp_fta"]`},
	"opp_free_throw_percentage":             {Selector: `td[data-stat="opp_ft_pct"]`},
	"opp_offensive_rebounds":                {Selector: `td[data-stat="opp_orb"]`},
	"opp_total_rebounds":                    {Selector: `td[data-stat="opp_trb"]`},
	"opp_assists":                           {Selector: `td[data-stat="opp_ast"]`},
	"opp_steals":                            {Selector: `td[data-stat="opp_stl"]`},
	"opp_blocks":                            {Selector: `td[data-stat="opp_blk"]`},
	"opp_turnovers":                         {Selector: `td[data-stat="opp_tov"]`},
	"opp_personal_fouls":                    {Selector: `td[data-stat="opp_pf"]`},
}
