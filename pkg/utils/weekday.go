package utils

// Canonical week order, Sunday first. Matches time.Weekday numbering.
var WeekdayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var weekdayRank = func() map[string]int {
	m := make(map[string]int, len(WeekdayNames))
	for i, name := range WeekdayNames {
		m[name] = i
	}
	return m
}()

// WeekdayRank returns the Sunday-first position of a full English weekday
// name, or false for anything else.
func WeekdayRank(name string) (int, bool) {
	rank, ok := weekdayRank[name]
	return rank, ok
}

func IsValidWeekday(name string) bool {
	_, ok := weekdayRank[name]
	return ok
}
