package sportsref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const boxscoreFixture = `
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
<table><tbody><tr>
	<td data-stat="assists_ev">1</td>
	<td data-stat="assists_ev"></td>
	<td data-stat="assists_ev">2</td>
	<td data-stat="assists_ev"></td>
	<td data-stat="assists_ev">3</td>
</tr></tbody></table>
<table><tbody><tr>
	<td class="right gamelink"><a href="/boxscores/201806070VEG.html">Final</a></td>
</tr></tbody></table>`

func TestBuildRecord(t *testing.T) {
	doc := parse(t, boxscoreFixture)
	scheme := Scheme{
		"date":       {Selector: `div[class="scorebox_meta"]`, Index: 0, Parse: ParseGameInfo},
		"arena":      {Selector: `div[class="scorebox_meta"]`, Index: 1, Parse: ParseGameInfo},
		"attendance": {Selector: `div[class="scorebox_meta"]`, Index: 2, Parse: ParseGameInfo},
		"duration":   {Selector: `div[class="scorebox_meta"]`, Index: 3, Parse: ParseGameInfo},
		"away_name":  {Selector: `a[itemprop="name"]`, Index: 0, Parse: ParseNameTag},
		"home_name":  {Selector: `a[itemprop="name"]`, Index: 1, Parse: ParseNameTag},
		"assists_ev": {Selector: `td[data-stat="assists_ev"]`, Parse: ParseCellList},
		"boxscore":   {Selector: `td[class="right gamelink"] a`, Parse: ParseBoxscoreLink},
		"winner":     {Parse: ParseComputed},
	}

	rec, err := BuildRecord(doc.Selection, scheme)
	require.NoError(t, err)
	require.False(t, rec.Empty())

	// the round label on line 1 shifts everything but date and time
	require.Equal(t, "Thu, Jun 7, 2018, 8:00 PM", rec.Value("date").Text())
	require.Equal(t, "Arena: T-Mobile Arena", rec.Value("arena").Text())
	require.Equal(t, "Attendance: 18,529", rec.Value("attendance").Text())
	require.Equal(t, "Game Duration: 2:29", rec.Value("duration").Text())

	require.Equal(t, "Washington Capitals", rec.Value("away_name").Tag().Text())
	require.Equal(t, "WSH", Abbreviation(rec.Value("away_name").Tag()))
	require.Equal(t, "VEG", Abbreviation(rec.Value("home_name").Tag()))

	require.Equal(t, []string{"1", "", "2", "", "3"}, rec.Value("assists_ev").Cells())
	require.Equal(t, "201806070VEG", rec.Value("boxscore").Text())

	require.False(t, rec.Value("winner").Present())
}

func TestBuildRecordRegularSeasonBlock(t *testing.T) {
	doc := parse(t, `<div class="scorebox_meta">
		<div>Wed, Oct 18, 2017, 7:00 PM</div>
		<div>Arena: Capital One Arena</div>
		<div>Attendance: 18,506</div>
	</div>`)
	scheme := Scheme{
		"date":       {Selector: `div[class="scorebox_meta"]`, Index: 0, Parse: ParseGameInfo},
		"arena":      {Selector: `div[class="scorebox_meta"]`, Index: 1, Parse: ParseGameInfo},
		"attendance": {Selector: `div[class="scorebox_meta"]`, Index: 2, Parse: ParseGameInfo},
		"duration":   {Selector: `div[class="scorebox_meta"]`, Index: 3, Parse: ParseGameInfo},
	}

	rec, err := BuildRecord(doc.Selection, scheme)
	require.NoError(t, err)

	// no round label, nothing shifts
	require.Equal(t, "Arena: Capital One Arena", rec.Value("arena").Text())
	require.Equal(t, "Attendance: 18,506", rec.Value("attendance").Text())
	// the block has no duration line; that is absent data, not an error
	require.False(t, rec.Value("duration").Present())
}

func TestBuildRecordUnfetchable(t *testing.T) {
	scheme := Scheme{
		"points_scored": {Selector: `td[data-stat="pts"]`},
	}

	rec, err := BuildRecord(nil, scheme)
	require.NoError(t, err)
	require.True(t, rec.Empty())
	require.False(t, rec.Value("points_scored").Present())
}

func TestBuildRecordSchemeMismatch(t *testing.T) {
	doc := parse(t, rowMarkup)
	scheme := Scheme{
		"points_scored": {Selector: `td[data-stat="pts"]`, Index: 5},
	}

	_, err := BuildRecord(doc.Selection, scheme)
	var schemeErr *SchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestBoxscoreID(t *testing.T) {
	testCases := []struct {
		markup   string
		expected string
	}{
		{`<a href="/boxscores/201806070VEG.html">Final</a>`, "201806070VEG"},
		{`<a href="https://www.hockey-reference.com/boxscores/201702040VAN.html?x=1">F</a>`, "201702040VAN"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, BoxscoreID(test.markup))
	}
}

func TestRecordCounts(t *testing.T) {
	rec, err := BuildRecord(nil, Scheme{})
	require.NoError(t, err)

	rec.SetCount("away_skaters", 18)
	require.Equal(t, 18, rec.Count("away_skaters"))
	require.Equal(t, 0, rec.Count("away_goalies"))
}
