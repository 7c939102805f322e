package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/timezone"
)

const timezoneHeader = "X-Timezone"

// requestLocation resolves the display zone from ?tz=, then the
// X-Timezone header, then fallback.
func requestLocation(c *gin.Context, fallback *time.Location) *time.Location {
	for _, tz := range []string{c.Query("tz"), c.GetHeader(timezoneHeader)} {
		if timezone.IsValid(tz) {
			return timezone.Location(tz)
		}
	}
	if fallback != nil {
		return fallback
	}
	return time.UTC
}

// requestZoneName is the zone name used to parse entered dates, empty when
// the caller sent none.
func requestZoneName(c *gin.Context, body string) string {
	for _, tz := range []string{body, c.Query("tz"), c.GetHeader(timezoneHeader)} {
		if timezone.IsValid(tz) {
			return tz
		}
	}
	return ""
}

// parseAnchor reads ?date=YYYY-MM-DD in loc, defaulting to today.
func parseAnchor(dateStr string, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return time.Now().In(loc), nil
	}
	return time.ParseInLocation(appointment.DateLayout, dateStr, loc)
}
