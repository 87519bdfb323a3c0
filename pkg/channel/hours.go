package channel

import (
	"fmt"
	"time"
)

const clockLayout = "15:04:05"

// Day-name abbreviations per locale, indexed by time.Weekday. These are the
// exact strings channel records store in ServiceHours.Days.
var weekdayNames = map[string][7]string{
	"es": {"Dom", "Lun", "Mar", "Mie", "Jue", "Vie", "Sab"},
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// DayName resolves the abbreviation for d in the given locale. Unknown
// locales fall back to Spanish, which is what the channel collection uses.
func DayName(locale string, d time.Weekday) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames["es"]
	}
	return names[d]
}

// Contains reports whether now falls inside the service window: today's day
// name (resolved in locale) must be listed in Days and the time of day must
// be within [Start, End). A nil or empty schedule contains nothing.
func (h *ServiceHours) Contains(now time.Time, locale string) (bool, error) {
	if h == nil || len(h.Days) == 0 {
		return false, nil
	}
	day := DayName(locale, now.Weekday())
	listed := false
	for _, d := range h.Days {
		if d == day {
			listed = true
			break
		}
	}
	if !listed {
		return false, nil
	}

	start, err := time.Parse(clockLayout, h.Start)
	if err != nil {
		return false, fmt.Errorf("channel: parsing service hours start %q: %w", h.Start, err)
	}
	end, err := time.Parse(clockLayout, h.End)
	if err != nil {
		return false, fmt.Errorf("channel: parsing service hours end %q: %w", h.End, err)
	}

	sec := secondsOfDay(now.Hour(), now.Minute(), now.Second())
	startSec := secondsOfDay(start.Clock())
	endSec := secondsOfDay(end.Clock())
	return sec >= startSec && sec < endSec, nil
}

func secondsOfDay(h, m, s int) int {
	return h*3600 + m*60 + s
}
