package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// dateParam reads ?date=YYYY-MM-DD in the shop timezone, defaulting to
// today. It writes the error response itself and returns false on failure.
func dateParam(c *gin.Context, tz string, now timezone.Clock) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		n := now().In(timezone.Location(tz))
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location()), true
	}

	day, err := timezone.ParseDate(tz, raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return time.Time{}, false
	}
	return day, true
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
