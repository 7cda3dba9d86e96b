package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// OnDate keeps the appointments whose calendar day, in day's location,
// equals day. Order is preserved.
func OnDate(list []Appointment, day time.Time) []Appointment {
	out := make([]Appointment, 0)
	for _, ap := range list {
		if timezone.SameDay(ap.Timestamp, day) {
			out = append(out, ap)
		}
	}
	return out
}

// Upcoming returns scheduled appointments strictly after now, earliest first.
func Upcoming(list []Appointment, now time.Time) []Appointment {
	out := make([]Appointment, 0)
	for _, ap := range list {
		if ap.Status == StatusScheduled && ap.Timestamp.After(now) {
			out = append(out, ap)
		}
	}
	return Insert(nil, out...)
}

func Next(list []Appointment, now time.Time) (Appointment, bool) {
	up := Upcoming(list, now)
	if len(up) == 0 {
		return Appointment{}, false
	}
	return up[0], true
}

func Remaining(list []Appointment, now time.Time) int {
	return len(Upcoming(list, now))
}
