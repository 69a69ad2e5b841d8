// Package nba scrapes basketball-reference team pages into typed records.
package nba

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DoubleBarrelBirds/sportsipy/lib/scrapers/sportsref"
	"github.com/PuerkitoBio/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/sportsref/nba")

// Game is one row of a team's game log: the matchup, its outcome and the
// team and opponent stat lines. Accessors return ErrNoData for games that
// have not been played yet.
type Game struct {
	rec sportsref.Record
}

func newGame(row *goquery.Selection) (*Game, error) {
	rec, err := sportsref.BuildRecord(row, scheduleScheme)
	if err != nil {
		return nil, err
	}
	return &Game{rec: rec}, nil
}

func (g *Game) intField(name string) (int, error) {
	return sportsref.Int(g.rec.Value(name))
}

func (g *Game) floatField(name string) (float64, error) {
	return sportsref.Float(g.rec.Value(name))
}

func (g *Game) textField(name string) (string, error) {
	v := g.rec.Value(name)
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	return v.Text(), nil
}

// Number returns which game of the season this is, starting at 1.
func (g *Game) Number() (int, error) {
	return g.intField("game")
}

// Date returns the date string as listed in the schedule, such as
// '2017-10-18'.
func (g *Game) Date() (string, error) {
	return g.textField("date")
}

var dateLayouts = []string{"2006-01-02", "Mon, Jan 2, 2006"}

// Datetime returns the day the game took place.
func (g *Game) Datetime() (time.Time, error) {
	date, err := g.Date()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateLayouts {
		when, err := time.Parse(layout, date)
		if err == nil {
			return when, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized schedule date %q", date)
}

// BoxscoreID returns the game's boxscore identifier, such as
// '201710180DET', usable with the boxscore scrapers.
func (g *Game) BoxscoreID() (string, error) {
	return g.textField("boxscore")
}

// Location indicates whether the game was played at home or on the road.
func (g *Game) Location() (sportsref.Location, error) {
	return sportsref.ParseLocation(g.rec.Value("location"))
}

// OpponentAbbr returns the opponent's abbreviation, such as 'CHI'.
func (g *Game) OpponentAbbr() (string, error) {
	return g.textField("opponent_abbr")
}

// Result indicates whether the team won or lost.
func (g *Game) Result() (sportsref.Outcome, error) {
	return sportsref.ParseOutcome(g.rec.Value("result"))
}

func (g *Game) PointsScored() (int, error) {
	return g.intField("points_scored")
}

func (g *Game) PointsAllowed() (int, error) {
	return g.intField("points_allowed")
}

func (g *Game) FieldGoals() (int, error) {
	return g.intField("field_goals")
}

func (g *Game) FieldGoalAttempts() (int, error) {
	return g.intField("field_goal_attempts")
}

// FieldGoalPercentage ranges from 0-1.
func (g *Game) FieldGoalPercentage() (float64, error) {
	return g.floatField("field_goal_percentage")
}

func (g *Game) ThreePointFieldGoals() (int, error) {
	return g.intField("three_point_field_goals")
}

func (g *Game) ThreePointFieldGoalAttempts() (int, error) {
	return g.intField("three_point_field_goal_attempts")
}

// ThreePointFieldGoalPercentage ranges from 0-1.
func (g *Game) ThreePointFieldGoalPercentage() (float64, error) {
	return g.floatField("three_point_field_goal_percentage")
}

func (g *Game) FreeThrows() (int, error) {
	return g.intField("free_throws")
}

func (g *Game) FreeThrowAttempts() (int, error) {
	return g.intField("free_throw_attempts")
}

// FreeThrowPercentage ranges from 0-1.
func (g *Game) FreeThrowPercentage() (float64, error) {
	return g.floatField("free_throw_percentage")
}

func (g *Game) OffensiveRebounds() (int, error) {
	return g.intField("offensive_rebounds")
}

func (g *Game) TotalRebounds() (int, error) {
	return g.intField("total_rebounds")
}

func (g *Game) Assists() (int, error) {
	return g.intField("assists")
}

func (g *Game) Steals() (int, error) {
	return g.intField("steals")
}

func (g *Game) Blocks() (int, error) {
	return g.intField("blocks")
}

func (g *Game) Turnovers() (int, error) {
	return g.intField("turnovers")
}

func (g *Game) PersonalFouls() (int, error) {
	return g.intField("personal_fouls")
}

func (g *Game) OppFieldGoals() (int, error) {
	return g.intField("opp_field_goals")
}

func (g *Game) OppFieldGoalAttempts() (int, error) {
	return g.intField("opp_field_goal_attempts")
}

// OppFieldGoalPercentage ranges from 0-1.
func (g *Game) OppFieldGoalPercentage() (float64, error) {
	return g.floatField("opp_field_goal_percentage")
}

func (g *Game) OppThreePointFieldGoals() (int, error) {
	return g.intField("opp_three_point_field_goals")
}

func (g *Game) OppThreePointFieldGoalAttempts() (int, error) {
	return g.intField("opp_three_point_field_goal_attempts")
}

// OppThreePointFieldGoalPercentage ranges from 0-1.
func (g *Game) OppThreePointFieldGoalPercentage() (float64, error) {
	return g.floatField("opp_three_point_field_goal_percentage")
}

func (g *Game) OppFreeThrows() (int, error) {
	return g.intField("opp_free_throws")
}

func (g *Game) OppFreeThrowAttempts() (int, error) {
	return g.intField("opp_free_throw_attempts")
}

// OppFreeThrowPercentage ranges from 0-1.
func (g *Game) OppFreeThrowPercentage() (float64, error) {
	return g.floatField("opp_free_throw_percentage")
}

func (g *Game) OppOffensiveRebounds() (int, error) {
	return g.intField("opp_offensive_rebounds")
}

func (g *Game) OppTotalRebounds() (int, error) {
	return g.intField("opp_total_rebounds")
}

func (g *Game) OppAssists() (int, error) {
	return g.intField("opp_assists")
}

func (g *Game) OppSteals() (int, error) {
	return g.intField("opp_steals")
}

func (g *Game) OppBlocks() (int, error) {
	return g.intField("opp_blocks")
}

func (g *Game) OppTurnovers() (int, error) {
	return g.intField("opp_turnovers")
}

func (g *Game) OppPersonalFouls() (int, error) {
	return g.intField("opp_personal_fouls")
}

// Schedule is a team's season in document order: regular season rows first,
// playoff rows appended when the season had any.
type Schedule struct {
	games []*Game
}

// NewSchedule fetches and parses a team's game log. A zero year means the
// season currently in progress.
func NewSchedule(ctx context.Context, client *sportsref.Client, team string, year int) (*Schedule, error) {
	ctx, span := tracer.Start(ctx, "NewSchedule")
	defer span.End()

	if client == nil {
		client = sportsref.DefaultClient
	}
	if year == 0 {
		year = sportsref.SeasonYear(time.Now(), seasonRollover)
	}

	doc, err := client.Document(ctx, fmt.Sprintf(scheduleURL, team, year))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch schedule page")
		return nil, err
	}
	return parseSchedule(doc)
}

func parseSchedule(doc *goquery.Document) (*Schedule, error) {
	sched := &Schedule{}
	err := sched.addGames(sportsref.DataRows(doc.Find(scheduleTable)))
	if err != nil {
		return nil, err
	}

	playoffs := doc.Find(playoffScheduleDiv)
	if playoffs.Length() > 0 {
		err = sched.addGames(sportsref.DataRows(playoffs.Find("table")))
		if err != nil {
			return nil, err
		}
	}
	return sched, nil
}

func (s *Schedule) addGames(rows []*goquery.Selection) error {
	for _, row := range rows {
		game, err := newGame(row)
		if err != nil {
			return err
		}
		s.games = append(s.games, game)
	}
	return nil
}

func (s *Schedule) Len() int {
	return len(s.games)
}

// Game returns the schedule entry at the given 0-based position.
func (s *Schedule) Game(i int) *Game {
	return s.games[i]
}

// Games returns every schedule entry in document order.
func (s *Schedule) Games() []*Game {
	return s.games
}

// ByDate returns the game played on the given calendar date, ignoring the
// time of day. Reports ErrGameNotFound when the team did not play that day.
func (s *Schedule) ByDate(date time.Time) (*Game, error) {
	for _, game := range s.games {
		when, err := game.Datetime()
		if err != nil {
			continue
		}
		if sportsref.SameDay(when, date) {
			return game, nil
		}
	}
	return nil, sportsref.ErrGameNotFound
}

// Table renders the schedule's headline columns as a text table.
func (s *Schedule) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Date", "Loc", "Opp", "Result", "PTS", "Opp PTS"})

	for _, game := range s.games {
		number, _ := game.Number()
		date, _ := game.Date()
		opponent, _ := game.OpponentAbbr()

		location := ""
		if loc, err := game.Location(); err == nil {
			location = loc.String()
		}
		result := ""
		if res, err := game.Result(); err == nil {
			result = res.String()
		}
		scored := ""
		if pts, err := game.PointsScored(); err == nil {
			scored = strconv.Itoa(pts)
		}
		allowed := ""
		if pts, err := game.PointsAllowed(); err == nil {
			allowed = strconv.Itoa(pts)
		}

		t.AppendRow(table.Row{number, date, location, opponent, result, scored, allowed})
	}
	return t.Render()
}
