package domain

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// relTimeMagnitudes floor the age into the largest whole unit. Each
// threshold routes its exact boundary to the larger unit.
var relTimeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: time.Hour, Format: "%dm %s", DivBy: time.Minute},
	{D: 24 * time.Hour, Format: "%dh %s", DivBy: time.Hour},
	{D: math.MaxInt64, Format: "%dd %s", DivBy: 24 * time.Hour},
}

// TimeAgo formats the age of t relative to now. Timestamps in the future
// count as "just now".
func TimeAgo(now, t time.Time) string {
	if t.After(now) {
		t = now
	}
	return humanize.CustomRelTime(t, now, "ago", "ago", relTimeMagnitudes)
}
