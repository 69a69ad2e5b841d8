package sportsref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func text(s string) Value {
	return Value{text: s, ok: true}
}

func TestInt(t *testing.T) {
	n, err := Int(text("104"))
	require.NoError(t, err)
	require.Equal(t, 104, n)

	_, err = Int(Value{})
	require.ErrorIs(t, err, ErrNoData)

	_, err = Int(text("OT"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoData)
}

func TestIntPrefix(t *testing.T) {
	n, err := IntPrefix(text("Attendance: 1,234"), "Attendance: ")
	require.NoError(t, err)
	require.Equal(t, 1234, n)

	_, err = IntPrefix(Value{}, "Attendance: ")
	require.ErrorIs(t, err, ErrNoData)
}

func TestFloat(t *testing.T) {
	f, err := Float(text(".524"))
	require.NoError(t, err)
	require.InDelta(t, 0.524, f, 1e-9)

	_, err = Float(Value{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation(text("@"))
	require.NoError(t, err)
	require.Equal(t, Away, loc)

	loc, err = ParseLocation(text(""))
	require.NoError(t, err)
	require.Equal(t, Home, loc)

	loc, err = ParseLocation(text("H"))
	require.NoError(t, err)
	require.Equal(t, Home, loc)

	_, err = ParseLocation(Value{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestParseOutcome(t *testing.T) {
	res, err := ParseOutcome(text("L"))
	require.NoError(t, err)
	require.Equal(t, Loss, res)

	res, err = ParseOutcome(text("l"))
	require.NoError(t, err)
	require.Equal(t, Loss, res)

	res, err = ParseOutcome(text("W"))
	require.NoError(t, err)
	require.Equal(t, Win, res)
}

func TestRatio(t *testing.T) {
	require.Equal(t, 0.914, Ratio(32, 35))
	require.Equal(t, 0.0, Ratio(0, 0))
	require.Equal(t, 0.0, Ratio(10, 0))
}

func TestSideSum(t *testing.T) {
	// three away skaters then two home skaters, blanks skipped
	cells := Value{cells: []string{"1", "", "2", "", "3"}, ok: true}

	away, err := SideSum(cells, 3, Away)
	require.NoError(t, err)
	require.Equal(t, 3, away)

	home, err := SideSum(cells, 3, Home)
	require.NoError(t, err)
	require.Equal(t, 3, home)

	_, err = SideSum(Value{}, 3, Away)
	require.ErrorIs(t, err, ErrNoData)
}

func TestSideSumBoundaryClamped(t *testing.T) {
	cells := Value{cells: []string{"1", "2"}, ok: true}

	away, err := SideSum(cells, 5, Away)
	require.NoError(t, err)
	require.Equal(t, 3, away)

	home, err := SideSum(cells, 5, Home)
	require.NoError(t, err)
	require.Equal(t, 0, home)
}
