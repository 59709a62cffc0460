package clock

import (
	"math"
	"strconv"
	"time"
)

// InstantLayout is the display format for simulated instants.
const InstantLayout = "2006-01-02 15:04:05 MST"

// FormatInstant renders t in UTC for status lines.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// FormatScale renders a scale as a short rate such as "1 day/s".
func FormatScale(scale float64) string {
	units := []struct {
		secs float64
		name string
	}{
		{2592000, "mo"},
		{604800, "wk"},
		{86400, "day"},
		{3600, "hr"},
		{60, "min"},
		{1, "s"},
	}

	mag := math.Abs(scale)
	prefix := ""
	if scale < 0 {
		prefix = "-"
	}
	for _, u := range units {
		if mag >= u.secs {
			return prefix + trimFloat(mag/u.secs) + " " + u.name + "/s"
		}
	}
	return prefix + trimFloat(mag) + "x"
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
