// Package nhl scrapes hockey-reference boxscore pages into typed records.
package nhl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DoubleBarrelBirds/sportsipy/lib/htmlutil"
	"github.com/DoubleBarrelBirds/sportsipy/lib/scrapers/sportsref"
	"github.com/PuerkitoBio/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/sportsref/nhl")

// Boxscore holds the final statistics of one game: date, venue, both
// teams' names and the full stat lines. A boxscore built for a game that
// has not been played yet carries no data; every accessor reports
// ErrNoData and Played reports false.
type Boxscore struct {
	id  string
	rec sportsref.Record
}

// NewBoxscore fetches and parses the boxscore page for an identifier such
// as '201806070VEG'. A fetch failure means the game has most likely not
// been played yet and yields an empty boxscore rather than an error; a
// page that no longer matches the extraction scheme is an error.
func NewBoxscore(ctx context.Context, client *sportsref.Client, id string) (*Boxscore, error) {
	ctx, span := tracer.Start(ctx, "NewBoxscore")
	defer span.End()

	if client == nil {
		client = sportsref.DefaultClient
	}

	doc, err := client.Document(ctx, fmt.Sprintf(boxscoreURL, id))
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch boxscore, treating game as not played",
			"id", id, "err", err)
		rec, _ := sportsref.BuildRecord(nil, boxscoreScheme)
		return &Boxscore{id: id, rec: rec}, nil
	}

	boxscore, err := parseBoxscore(id, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse boxscore")
		return nil, err
	}
	return boxscore, nil
}

func parseBoxscore(id string, doc *goquery.Document) (*Boxscore, error) {
	rec, err := sportsref.BuildRecord(doc.Selection, boxscoreScheme)
	if err != nil {
		return nil, err
	}

	// the away roster sizes split the per-player cell lists between the
	// two teams
	rec.SetCount(awaySkaters, len(sportsref.DataRows(doc.Find(skaterTables).First())))
	rec.SetCount(awayGoalies, len(sportsref.DataRows(doc.Find(goalieTables).First())))

	return &Boxscore{id: id, rec: rec}, nil
}

// ID returns the boxscore identifier the record was built from.
func (b *Boxscore) ID() string {
	return b.id
}

// Played reports whether the boxscore carries any data.
func (b *Boxscore) Played() bool {
	return !b.rec.Empty()
}

func (b *Boxscore) intField(name string) (int, error) {
	return sportsref.Int(b.rec.Value(name))
}

func (b *Boxscore) skaterSum(name string, side sportsref.Location) (int, error) {
	return sportsref.SideSum(b.rec.Value(name), b.rec.Count(awaySkaters), side)
}

func (b *Boxscore) goalieSum(name string, side sportsref.Location) (int, error) {
	return sportsref.SideSum(b.rec.Value(name), b.rec.Count(awayGoalies), side)
}

// Date returns the day the game took place, such as 'Thu, Jun 7, 2018'.
// The info line carries date and start time together; everything before
// the last comma is the date.
func (b *Boxscore) Date() (string, error) {
	v := b.rec.Value("date")
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	parts := strings.Split(v.Text(), ",")
	return strings.Join(parts[:len(parts)-1], ","), nil
}

// Time returns the start time of the game, such as '8:00 PM'.
func (b *Boxscore) Time() (string, error) {
	v := b.rec.Value("time")
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	parts := strings.Split(v.Text(), ",")
	return strings.TrimSpace(parts[len(parts)-1]), nil
}

// Arena returns the name of the arena the game was played in.
func (b *Boxscore) Arena() (string, error) {
	v := b.rec.Value("arena")
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	return strings.TrimPrefix(v.Text(), "Arena: "), nil
}

// Attendance returns the game's listed attendance.
func (b *Boxscore) Attendance() (int, error) {
	return sportsref.IntPrefix(b.rec.Value("attendance"), "Attendance: ")
}

// Duration returns the game's duration in the format 'H:MM'.
func (b *Boxscore) Duration() (string, error) {
	v := b.rec.Value("duration")
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	return strings.TrimPrefix(v.Text(), "Game Duration: "), nil
}

// Winner indicates whether the home or away team won.
func (b *Boxscore) Winner() (sportsref.Location, error) {
	home, err := b.HomeGoals()
	if err != nil {
		return sportsref.Home, err
	}
	away, err := b.AwayGoals()
	if err != nil {
		return sportsref.Home, err
	}
	if home > away {
		return sportsref.Home, nil
	}
	return sportsref.Away, nil
}

func (b *Boxscore) nameText(name string) (string, error) {
	v := b.rec.Value(name)
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	return htmlutil.CleanText(v.Tag().Text()), nil
}

func (b *Boxscore) nameAbbr(name string) (string, error) {
	v := b.rec.Value(name)
	if !v.Present() {
		return "", sportsref.ErrNoData
	}
	return sportsref.Abbreviation(v.Tag()), nil
}

// AwayName returns the away team's full name, such as 'Washington
// Capitals'.
func (b *Boxscore) AwayName() (string, error) {
	return b.nameText("away_name")
}

// HomeName returns the home team's full name, such as 'Vegas Golden
// Knights'.
func (b *Boxscore) HomeName() (string, error) {
	return b.nameText("home_name")
}

// WinningName returns the winning team's full name.
func (b *Boxscore) WinningName() (string, error) {
	winner, err := b.Winner()
	if err != nil {
		return "", err
	}
	if winner == sportsref.Home {
		return b.HomeName()
	}
	return b.AwayName()
}

// WinningAbbr returns the winning team's abbreviation, such as 'VEG'.
func (b *Boxscore) WinningAbbr() (string, error) {
	winner, err := b.Winner()
	if err != nil {
		return "", err
	}
	if winner == sportsref.Home {
		return b.nameAbbr("home_name")
	}
	return b.nameAbbr("away_name")
}

// LosingName returns the losing team's full name.
func (b *Boxscore) LosingName() (string, error) {
	winner, err := b.Winner()
	if err != nil {
		return "", err
	}
	if winner == sportsref.Home {
		return b.AwayName()
	}
	return b.HomeName()
}

// LosingAbbr returns the losing team's abbreviation, such as 'WSH'.
func (b *Boxscore) LosingAbbr() (string, error) {
	winner, err := b.Winner()
	if err != nil {
		return "", err
	}
	if winner == sportsref.Home {
		return b.nameAbbr("away_name")
	}
	return b.nameAbbr("home_name")
}

func (b *Boxscore) AwayGoals() (int, error) {
	return b.intField("away_goals")
}

func (b *Boxscore) AwayAssists() (int, error) {
	return b.intField("away_assists")
}

func (b *Boxscore) AwayPoints() (int, error) {
	return b.intField("away_points")
}

func (b *Boxscore) AwayPenaltiesInMinutes() (int, error) {
	return b.intField("away_penalties_in_minutes")
}

func (b *Boxscore) AwayEvenStrengthGoals() (int, error) {
	return b.intField("away_even_strength_goals")
}

func (b *Boxscore) AwayPowerPlayGoals() (int, error) {
	return b.intField("away_power_play_goals")
}

func (b *Boxscore) AwayShortHandedGoals() (int, error) {
	return b.intField("away_short_handed_goals")
}

func (b *Boxscore) AwayGameWinningGoals() (int, error) {
	return b.skaterSum("game_winning_goals", sportsref.Away)
}

func (b *Boxscore) AwayEvenStrengthAssists() (int, error) {
	return b.skaterSum("even_strength_assists", sportsref.Away)
}

func (b *Boxscore) AwayPowerPlayAssists() (int, error) {
	return b.skaterSum("power_play_assists", sportsref.Away)
}

func (b *Boxscore) AwayShortHandedAssists() (int, error) {
	return b.skaterSum("short_handed_assists", sportsref.Away)
}

func (b *Boxscore) AwayShotsOnGoal() (int, error) {
	return b.intField("away_shots_on_goal")
}

// AwayShootingPercentage ranges from 0-100.
func (b *Boxscore) AwayShootingPercentage() (float64, error) {
	return sportsref.Float(b.rec.Value("away_shooting_percentage"))
}

func (b *Boxscore) AwaySaves() (int, error) {
	return b.goalieSum("saves", sportsref.Away)
}

// AwaySavePercentage is derived from saves over the home team's shots on
// goal, rounded to 3 decimals, ranging from 0-1. A team that faced no
// shots reports 0.0.
func (b *Boxscore) AwaySavePercentage() (float64, error) {
	saves, err := b.AwaySaves()
	if err != nil {
		return 0, err
	}
	shots, err := b.HomeShotsOnGoal()
	if err != nil {
		return 0, err
	}
	return sportsref.Ratio(saves, shots), nil
}

// AwayShutout returns 1 when the away team shut out the home team.
func (b *Boxscore) AwayShutout() (int, error) {
	return b.goalieSum("shutouts", sportsref.Away)
}

func (b *Boxscore) HomeGoals() (int, error) {
	return b.intField("home_goals")
}

func (b *Boxscore) HomeAssists() (int, error) {
	return b.intField("home_assists")
}

func (b *Boxscore) HomePoints() (int, error) {
	return b.intField("home_points")
}

func (b *Boxscore) HomePenaltiesInMinutes() (int, error) {
	return b.intField("home_penalties_in_minutes")
}

func (b *Boxscore) HomeEvenStrengthGoals() (int, error) {
	return b.intField("home_even_strength_goals")
}

func (b *Boxscore) HomePowerPlayGoals() (int, error) {
	return b.intField("home_power_play_goals")
}

func (b *Boxscore) HomeShortHandedGoals() (int, error) {
	return b.intField("home_short_handed_goals")
}

func (b *Boxscore) HomeGameWinningGoals() (int, error) {
	return b.skaterSum("game_winning_goals", sportsref.Home)
}

func (b *Boxscore) HomeEvenStrengthAssists() (int, error) {
	return b.skaterSum("even_strength_assists", sportsref.Home)
}

func (b *Boxscore) HomePowerPlayAssists() (int, error) {
	return b.skaterSum("power_play_assists", sportsref.Home)
}

func (b *Boxscore) HomeShortHandedAssists() (int, error) {
	return b.skaterSum("short_handed_assists", sportsref.Home)
}

func (b *Boxscore) HomeShotsOnGoal() (int, error) {
	return b.intField("home_shots_on_goal")
}

// HomeShootingPercentage ranges from 0-100.
func (b *Boxscore) HomeShootingPercentage() (float64, error) {
	return sportsref.Float(b.rec.Value("home_shooting_percentage"))
}

func (b *Boxscore) HomeSaves() (int, error) {
	return b.goalieSum("saves", sportsref.Home)
}

// HomeSavePercentage is derived from saves over the away team's shots on
// goal, rounded to 3 decimals, ranging from 0-1.
func (b *Boxscore) HomeSavePercentage() (float64, error) {
	saves, err := b.HomeSaves()
	if err != nil {
		return 0, err
	}
	shots, err := b.AwayShotsOnGoal()
	if err != nil {
		return 0, err
	}
	return sportsref.Ratio(saves, shots), nil
}

// HomeShutout returns 1 when the home team shut out the away team.
func (b *Boxscore) HomeShutout() (int, error) {
	return b.goalieSum("shutouts", sportsref.Home)
}

type statRow struct {
	label string
	away  func() (int, error)
	home  func() (int, error)
}

// Table renders both teams' stat lines side by side as a text table.
func (b *Boxscore) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Stat", "Away", "Home"})

	rows := []statRow{
		{"Goals", b.AwayGoals, b.HomeGoals},
		{"Assists", b.AwayAssists, b.HomeAssists},
		{"Points", b.AwayPoints, b.HomePoints},
		{"PIM", b.AwayPenaltiesInMinutes, b.HomePenaltiesInMinutes},
		{"Shots on Goal", b.AwayShotsOnGoal, b.HomeShotsOnGoal},
		{"Saves", b.AwaySaves, b.HomeSaves},
	}
	for _, row := range rows {
		away := ""
		if n, err := row.away(); err == nil {
			away = fmt.Sprintf("%d", n)
		}
		home := ""
		if n, err := row.home(); err == nil {
			home = fmt.Sprintf("%d", n)
		}
		t.AppendRow(table.Row{row.label, away, home})
	}
	return t.Render()
}

// GameSummary is the headline information for one game on a day's boxscore
// listing page.
type GameSummary struct {
	BoxscoreID string
	AwayName   string
	AwayAbbr   string
	HomeName   string
	HomeAbbr   string
}

// Games lists every game played on the given day, in page order. The
// month, day and year of the date matter for the search; the time of day
// does not. Days without games yield an empty list.
func Games(ctx context.Context, client *sportsref.Client, date time.Time) ([]GameSummary, error) {
	ctx, span := tracer.Start(ctx, "Games")
	defer span.End()

	if client == nil {
		client = sportsref.DefaultClient
	}

	url := fmt.Sprintf(boxscoresURL, int(date.Month()), date.Day(), date.Year())
	doc, err := client.Document(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch day listing")
		return nil, err
	}
	return parseGames(doc), nil
}

func parseGames(doc *goquery.Document) []GameSummary {
	var games []GameSummary
	doc.Find(dayGameTable).Each(func(_ int, game *goquery.Selection) {
		links := game.Find(teamLinks)
		away := links.First()
		home := links.Last()

		markup := ""
		if gamelink := game.Find(gamelinkCell); gamelink.Length() > 0 {
			markup, _ = goquery.OuterHtml(gamelink.First())
		}

		games = append(games, GameSummary{
			BoxscoreID: sportsref.BoxscoreID(markup),
			AwayName:   htmlutil.CleanText(away.Text()),
			AwayAbbr:   sportsref.Abbreviation(away),
			HomeName:   htmlutil.CleanText(home.Text()),
			HomeAbbr:   sportsref.Abbreviation(home),
		})
	})
	return games
}
