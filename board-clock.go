package board

import (
	"fmt"
	"time"
)

// clock converts feed timestamps into the board's civil timezone. Every
// comparison against "now" in a view build uses a single instant taken from
// the same clock at the start of the build.
type clock struct {
	loc *time.Location
}

func newClock(loc *time.Location) *clock {
	return &clock{loc: loc}
}

func newBerlinClock() *clock {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
	return &clock{loc: loc}
}

func (c *clock) now() time.Time {
	return time.Now().In(c.loc)
}

func (c *clock) fromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(c.loc)
}

// parseISO accepts ISO-8601 timestamps with or without an offset. The weather
// feed emits offset-less timestamps which are UTC, so those are parsed as UTC
// before converting into the board zone.
func (c *clock) parseISO(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(c.loc), nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.In(c.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse %s as timestamp", value)
}
