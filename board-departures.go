package board

import (
	"time"
)

const DefaultDepartureLimit = 12

// ArrivalEvent is one raw record from the departures feed, already normalized
// into the board timezone by the fetcher.
type ArrivalEvent struct {
	Line        string
	Destination string
	Departure   time.Time
}

// DisplayArrival is what the board renders for one upcoming departure.
type DisplayArrival struct {
	Line        string
	Destination string
	Departure   string
	MinutesLeft int
	Color       string
}

// SelectDepartures keeps every event departing at or after now, in feed
// order, up to limit records. A departure exactly at now is kept with zero
// minutes left.
func SelectDepartures(events []ArrivalEvent, now time.Time, limit int) []DisplayArrival {
	result := make([]DisplayArrival, 0, limit)
	for _, ev := range events {
		if ev.Departure.Before(now) {
			continue
		}
		result = append(result, DisplayArrival{
			Line:        ev.Line,
			Destination: ev.Destination,
			Departure:   ev.Departure.Format("15:04"),
			MinutesLeft: minutesUntil(now, ev.Departure),
		})
		if len(result) >= limit {
			break
		}
	}
	return result
}

// minutesUntil floors rather than truncates, so a stale record a few seconds
// in the past reads as -1, not 0. Stale records are a feed latency quirk and
// are shown as delivered, never clamped.
func minutesUntil(now, t time.Time) int {
	secs := int(t.Sub(now) / time.Second)
	mins := secs / 60
	if secs < 0 && secs%60 != 0 {
		mins--
	}
	return mins
}
