package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearOnly     = regexp.MustCompile(`^([+-]?\d{4})$`)
	extendedDate = regexp.MustCompile(`^([+-]?\d{4})-(\d{2})(?:-(\d{2}))?$`)
	basicDate    = regexp.MustCompile(`^([+-]?\d{4})(\d{2})(\d{2})$`)
	ordinalDate  = regexp.MustCompile(`^([+-]?\d{4})-?(\d{3})$`)
	weekDate     = regexp.MustCompile(`^([+-]?\d{4})-?W(\d{2})(?:-?([1-7]))?$`)
	clockTime    = regexp.MustCompile(`^(?:(\d{2})(?:(:?)(\d{2})(?:(:?)(\d{2}))?)?(?:[.,](\d+))?)?(Z|z|[+-]\d{2}(?::?\d{2})?)?$`)
)

// ParseDate accepts ISO-8601 dates: calendar (extended or basic), year,
// year-month, ordinal and week forms, optionally followed by a time of day
// separated by "T" or whitespace. Times without a zone are taken as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	datePart, clockPart, hasClock := s, "", false
	if i := strings.IndexAny(s, "T \t"); i >= 0 {
		datePart, clockPart, hasClock = s[:i], s[i+1:], true
	}

	day, ok := parseCalendar(datePart, hasClock)
	if !ok || !hasClock {
		return day, ok
	}
	return applyClock(day, clockPart)
}

func parseCalendar(s string, withClock bool) (time.Time, bool) {
	if m := yearOnly.FindStringSubmatch(s); m != nil {
		if withClock {
			return time.Time{}, false
		}
		return civil(atoi(m[1]), 1, 1)
	}

	if m := extendedDate.FindStringSubmatch(s); m != nil {
		d := 1
		if m[3] != "" {
			d = atoi(m[3])
		}
		return civil(atoi(m[1]), atoi(m[2]), d)
	}

	if m := basicDate.FindStringSubmatch(s); m != nil {
		return civil(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := ordinalDate.FindStringSubmatch(s); m != nil {
		y, n := atoi(m[1]), atoi(m[2])
		t := time.Date(y, time.January, n, 0, 0, 0, 0, time.UTC)
		if n < 1 || t.Year() != y {
			return time.Time{}, false
		}
		return t, true
	}

	if m := weekDate.FindStringSubmatch(s); m != nil {
		y, w, wd := atoi(m[1]), atoi(m[2]), 1
		if m[3] != "" {
			wd = atoi(m[3])
		}
		if w < 1 || w > 53 {
			return time.Time{}, false
		}
		// week 1 holds January 4th
		jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
		monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
		t := monday.AddDate(0, 0, (w-1)*7+wd-1)
		if iy, iw := t.ISOWeek(); iy != y || iw != w {
			return time.Time{}, false
		}
		return t, true
	}

	return time.Time{}, false
}

// civil rejects dates that time.Date would normalize, such as February 30th.
func civil(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func applyClock(day time.Time, s string) (time.Time, bool) {
	m := clockTime.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	var elapsed time.Duration
	if m[1] != "" {
		h, mi, sec := atoi(m[1]), 0, 0
		unit := time.Hour
		if m[3] != "" {
			mi, unit = atoi(m[3]), time.Minute
		}
		if m[5] != "" {
			if m[2] != m[4] {
				return time.Time{}, false
			}
			sec, unit = atoi(m[5]), time.Second
		}
		if h > 24 || mi > 59 || sec > 59 {
			return time.Time{}, false
		}
		if h == 24 && (mi != 0 || sec != 0 || strings.Trim(m[6], "0") != "") {
			return time.Time{}, false
		}

		elapsed = time.Duration(h)*time.Hour + time.Duration(mi)*time.Minute + time.Duration(sec)*time.Second
		if m[6] != "" {
			f, _ := strconv.ParseFloat("0."+m[6], 64)
			elapsed += time.Duration(f * float64(unit))
		}
	}

	var offset time.Duration
	if z := m[7]; z != "" && z != "Z" && z != "z" {
		digits := strings.ReplaceAll(z[1:], ":", "")
		oh, om := atoi(digits[:2]), 0
		if len(digits) == 4 {
			om = atoi(digits[2:])
		}
		if oh > 23 || om > 59 {
			return time.Time{}, false
		}
		offset = time.Duration(oh)*time.Hour + time.Duration(om)*time.Minute
		if z[0] == '-' {
			offset = -offset
		}
	}

	return day.Add(elapsed - offset).UTC(), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
