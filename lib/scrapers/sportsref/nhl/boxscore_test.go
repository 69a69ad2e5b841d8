package nhl

import (
	"strings"
	"testing"

	"github.com/DoubleBarrelBirds/sportsipy/lib/scrapers/sportsref"
	"github.com/DoubleBarrelBirds/sportsipy/lib/telemetry"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const boxscoreFixture = `<html><body>
<div class="scorebox">
	<a itemprop="name" href="/teams/WSH/2018.html">Washington Capitals</a>
	<a itemprop="name" href="/teams/VEG/2018.html">Vegas Golden Knights</a>
</div>
<div class="scorebox_meta">
	<div>Thu, Jun 7, 2018, 8:00 PM</div>
	<div>Stanley Cup Final</div>
	<div>Arena: T-Mobile Arena</div>
	<div>Attendance: 18,529</div>
	<div>Game Duration: 2:29</div>
</div>
<table id="WSH_skaters">
	<tbody>
		<tr>
			<td data-stat="assists_ev">1</td>
			<td data-stat="assists_pp">1</td>
			<td data-stat="assists_sh"></td>
			<td data-stat="goals_gw">1</td>
		</tr>
		<tr>
			<td data-stat="assists_ev"></td>
			<td data-stat="assists_pp"></td>
			<td data-stat="assists_sh"></td>
			<td data-stat="goals_gw"></td>
		</tr>
		<tr>
			<td data-stat="assists_ev">2</td>
			<td data-stat="assists_pp"></td>
			<td data-stat="assists_sh"></td>
			<td data-stat="goals_gw"></td>
		</tr>
	</tbody>
	<tfoot><tr>
		<td data-stat="goals">4</td>
		<td data-stat="assists">7</td>
		<td data-stat="points">11</td>
		<td data-stat="pen_min">10</td>
		<td data-stat="goals_ev">3</td>
		<td data-stat="goals_pp">1</td>
		<td data-stat="goals_sh">0</td>
		<td data-stat="shots">33</td>
		<td data-stat="shot_pct">12.1</td>
	</tr></tfoot>
</table>
<table id="WSH_goalies">
	<tbody>
		<tr>
			<td data-stat="saves">27</td>
			<td data-stat="shutouts">0</td>
		</tr>
	</tbody>
</table>
<table id="VEG_skaters">
	<tbody>
		<tr>
			<td data-stat="assists_ev"></td>
			<td data-stat="assists_pp">1</td>
			<td data-stat="assists_sh"></td>
			<td data-stat="goals_gw"></td>
		</tr>
		<tr>
			<td data-stat="assists_ev">2</td>
			<td data-stat="assists_pp"></td>
			<td data-stat="assists_sh"></td>
			<td data-stat="goals_gw"></td>
		</tr>
	</tbody>
	<tfoot><tr>
		<td data-stat="goals">3</td>
		<td data-stat="assists">5</td>
		<td data-stat="points">8</td>
		<td data-stat="pen_min">8</td>
		<td data-stat="goals_ev">2</td>
		<td data-stat="goals_pp">1</td>
		<td data-stat="goals_sh">0</td>
		<td data-stat="shots">30</td>
		<td data-stat="shot_pct">10.0</td>
	</tr></tfoot>
</table>
<table id="VEG_goalies">
	<tbody>
		<tr>
			<td data-stat="saves">29</td>
			<td data-stat="shutouts">0</td>
		</tr>
	</tbody>
</table>
</body></html>`

func parseFixture(t *testing.T, markup string) *Boxscore {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	boxscore, err := parseBoxscore("201806070VEG", doc)
	if err != nil {
		t.Fatal(err)
	}
	return boxscore
}

func TestBoxscoreGameInfo(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/sportsref/nhl")
	defer cleanup()

	b := parseFixture(t, boxscoreFixture)

	require.True(t, b.Played())
	require.Equal(t, "201806070VEG", b.ID())

	date, err := b.Date()
	require.NoError(t, err)
	require.Equal(t, "Thu, Jun 7, 2018", date)

	start, err := b.Time()
	require.NoError(t, err)
	require.Equal(t, "8:00 PM", start)

	// the round label occupies the second line, shifting the venue facts
	arena, err := b.Arena()
	require.NoError(t, err)
	require.Equal(t, "T-Mobile Arena", arena)

	attendance, err := b.Attendance()
	require.NoError(t, err)
	require.Equal(t, 18529, attendance)

	duration, err := b.Duration()
	require.NoError(t, err)
	require.Equal(t, "2:29", duration)
}

func TestBoxscoreTeams(t *testing.T) {
	b := parseFixture(t, boxscoreFixture)

	winner, err := b.Winner()
	require.NoError(t, err)
	require.Equal(t, sportsref.Away, winner)

	name, err := b.WinningName()
	require.NoError(t, err)
	require.Equal(t, "Washington Capitals", name)

	abbr, err := b.WinningAbbr()
	require.NoError(t, err)
	require.Equal(t, "WSH", abbr)

	name, err = b.LosingName()
	require.NoError(t, err)
	require.Equal(t, "Vegas Golden Knights", name)

	abbr, err = b.LosingAbbr()
	require.NoError(t, err)
	require.Equal(t, "VEG", abbr)
}

func TestBoxscoreTotals(t *testing.T) {
	b := parseFixture(t, boxscoreFixture)

	testCases := []struct {
		name     string
		accessor func() (int, error)
		expected int
	}{
		{"away goals", b.AwayGoals, 4},
		{"home goals", b.HomeGoals, 3},
		{"away assists", b.AwayAssists, 7},
		{"home assists", b.HomeAssists, 5},
		{"away points", b.AwayPoints, 11},
		{"home points", b.HomePoints, 8},
		{"away pim", b.AwayPenaltiesInMinutes, 10},
		{"home pim", b.HomePenaltiesInMinutes, 8},
		{"away ev goals", b.AwayEvenStrengthGoals, 3},
		{"home ev goals", b.HomeEvenStrengthGoals, 2},
		{"away pp goals", b.AwayPowerPlayGoals, 1},
		{"home pp goals", b.HomePowerPlayGoals, 1},
		{"away sh goals", b.AwayShortHandedGoals, 0},
		{"home sh goals", b.HomeShortHandedGoals, 0},
		{"away shots", b.AwayShotsOnGoal, 33},
		{"home shots", b.HomeShotsOnGoal, 30},
	}

	for _, test := range testCases {
		n, err := test.accessor()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, n, test.name)
	}
}

func TestBoxscorePlayerCellAggregation(t *testing.T) {
	b := parseFixture(t, boxscoreFixture)

	testCases := []struct {
		name     string
		accessor func() (int, error)
		expected int
	}{
		// three away skaters then two home skaters, blanks skipped
		{"away ev assists", b.AwayEvenStrengthAssists, 3},
		{"home ev assists", b.HomeEvenStrengthAssists, 2},
		{"away pp assists", b.AwayPowerPlayAssists, 1},
		{"home pp assists", b.HomePowerPlayAssists, 1},
		{"away sh assists", b.AwayShortHandedAssists, 0},
		{"home sh assists", b.HomeShortHandedAssists, 0},
		{"away gw goals", b.AwayGameWinningGoals, 1},
		{"home gw goals", b.HomeGameWinningGoals, 0},
		// goalie stats split at the goalie boundary instead
		{"away saves", b.AwaySaves, 27},
		{"home saves", b.HomeSaves, 29},
		{"away shutout", b.AwayShutout, 0},
		{"home shutout", b.HomeShutout, 0},
	}

	for _, test := range testCases {
		n, err := test.accessor()
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, n, test.name)
	}
}

func TestBoxscorePercentages(t *testing.T) {
	b := parseFixture(t, boxscoreFixture)

	pct, err := b.AwayShootingPercentage()
	require.NoError(t, err)
	require.InDelta(t, 12.1, pct, 1e-9)

	savePct, err := b.AwaySavePercentage()
	require.NoError(t, err)
	require.Equal(t, 0.9, savePct)

	savePct, err = b.HomeSavePercentage()
	require.NoError(t, err)
	require.Equal(t, 0.879, savePct)
}

func TestBoxscoreRegularSeasonInfoBlock(t *testing.T) {
	b := parseFixture(t, `<div class="scorebox_meta">
		<div>Wed, Oct 18, 2017, 7:00 PM</div>
		<div>Arena: Capital One Arena</div>
		<div>Attendance: 18,506</div>
	</div>`)

	arena, err := b.Arena()
	require.NoError(t, err)
	require.Equal(t, "Capital One Arena", arena)

	attendance, err := b.Attendance()
	require.NoError(t, err)
	require.Equal(t, 18506, attendance)

	_, err = b.Duration()
	require.ErrorIs(t, err, sportsref.ErrNoData)
}

func TestBoxscoreNotPlayed(t *testing.T) {
	rec, err := sportsref.BuildRecord(nil, boxscoreScheme)
	require.NoError(t, err)
	b := &Boxscore{id: "201906070VEG", rec: rec}

	require.False(t, b.Played())

	_, err = b.AwayGoals()
	require.ErrorIs(t, err, sportsref.ErrNoData)
	_, err = b.Winner()
	require.ErrorIs(t, err, sportsref.ErrNoData)
	_, err = b.Attendance()
	require.ErrorIs(t, err, sportsref.ErrNoData)
	_, err = b.AwaySaves()
	require.ErrorIs(t, err, sportsref.ErrNoData)
}

func TestBoxscoreRenderedTable(t *testing.T) {
	b := parseFixture(t, boxscoreFixture)

	rendered := b.Table()
	require.Contains(t, rendered, "Goals")
	require.Contains(t, rendered, "33")
}

func TestParseGames(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
	<table class="teams"><tbody>
		<tr><td><a href="/teams/BOS/2017.html">Boston Bruins</a></td><td class="right">2</td></tr>
		<tr><td><a href="/teams/VAN/2017.html">Vancouver Canucks</a></td><td class="right">3</td></tr>
		<tr><td class="right gamelink"><a href="/boxscores/201702040VAN.html">Final</a></td></tr>
	</tbody></table>
	<table class="teams"><tbody>
		<tr><td><a href="/teams/NYR/2017.html">New York Rangers</a></td><td class="right">4</td></tr>
		<tr><td><a href="/teams/PIT/2017.html">Pittsburgh Penguins</a></td><td class="right">5</td></tr>
		<tr><td class="right gamelink"><a href="/boxscores/201702040PIT.html">Final</a></td></tr>
	</tbody></table>
	</body></html>`))
	require.NoError(t, err)

	games := parseGames(doc)
	require.Len(t, games, 2)

	require.Equal(t, GameSummary{
		BoxscoreID: "201702040VAN",
		AwayName:   "Boston Bruins",
		AwayAbbr:   "BOS",
		HomeName:   "Vancouver Canucks",
		HomeAbbr:   "VAN",
	}, games[0])
	require.Equal(t, "201702040PIT", games[1].BoxscoreID)
}
