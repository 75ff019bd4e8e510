package format

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp renders t in its own location as "YYYY-MM-DD HH:MM:SS UTC±H".
// The offset is expressed in hours east of UTC, with an explicit sign and no
// padding; fractional offsets keep their fraction (UTC+5.5).
func Timestamp(t time.Time) string {
	_, east := t.Zone()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d UTC%s",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		offset(east))
}

func offset(eastSeconds int) string {
	sign := "+"
	if eastSeconds < 0 {
		sign = "-"
		eastSeconds = -eastSeconds
	}
	hours := float64(eastSeconds) / 3600
	return sign + strconv.FormatFloat(hours, 'f', -1, 64)
}
