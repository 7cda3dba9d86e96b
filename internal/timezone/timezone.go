package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// SameDay compares the calendar day of t, seen in ref's location, with ref.
func SameDay(t, ref time.Time) bool {
	ty, tm, td := t.In(ref.Location()).Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}

// SameMonth reports whether t, seen in loc, falls in the given year and month.
func SameMonth(t time.Time, year int, month time.Month, loc *time.Location) bool {
	ty, tm, _ := t.In(loc).Date()
	return ty == year && tm == month
}

func ParseDate(tz, date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(tz))
}

func ParseDateTime(tz, date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, Location(tz))
}

// Clock returns the current time. Use cases take one so tests can pin it.
type Clock func() time.Time

func ClockIn(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
