package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayRankMatchesTimePackage(t *testing.T) {
	for i, name := range WeekdayNames {
		rank, ok := WeekdayRank(name)
		require.True(t, ok, "expected %q to be a valid weekday", name)
		assert.Equal(t, i, rank)
		assert.Equal(t, name, time.Weekday(i).String())
	}
}

func TestWeekdayRankRejectsJunk(t *testing.T) {
	for _, name := range []string{"", "monday", "Mon", "Funday"} {
		_, ok := WeekdayRank(name)
		assert.False(t, ok, "expected %q to be invalid", name)
		assert.False(t, IsValidWeekday(name))
	}
}

func TestDateOnlyStripsTime(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	in := time.Date(2024, 2, 15, 23, 59, 59, 0, loc)
	want := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, DateOnly(in).Equal(want))
}

func TestFixedClock(t *testing.T) {
	day := time.Date(2024, 2, 15, 13, 45, 0, 0, time.UTC)
	clock := FixedClock{Day: day}
	assert.True(t, clock.Today().Equal(DateOnly(day)))
}
