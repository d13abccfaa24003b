package board

import (
	"time"

	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/metrics"
)

// BoardAPI is what the rendering layer consumes. It has no opinion on how
// views are serialized afterwards.
type BoardAPI interface {
	View(stationName string, opts ViewOptions) (View, error)
	Suggest(query string) []string
	StationNames() []string
}

// ViewOptions override the window sizes for one view. Zero values fall back
// to the configured defaults.
type ViewOptions struct {
	DepartureLimit int
	ForecastHours  int
	Palette        []string
}

// View holds the display-ready structures for one request. NextHour is nil
// when the feed carries no sample after now.
type View struct {
	StationName string
	Departures  []DisplayArrival
	Colors      map[string]string
	Forecast    []DisplayHour
	NextHour    *NextHour
}

type boardAPI struct {
	stations   *stationFetcher
	departures *departuresFetcher
	weather    *weatherFetcher
	index      *StationIndex
	clk        *clock
	defaults   ViewOptions
	transport  []string
	collector  *metrics.Collector
}

// NewBoardAPI wires the feed fetchers against the given timezone. transport
// filters the departures feed, e.g. ["UBAHN"].
func NewBoardAPI(index *StationIndex, loc *time.Location, transport []string, defaults ViewOptions, collector *metrics.Collector) BoardAPI {
	clk := newClock(loc)
	if defaults.DepartureLimit <= 0 {
		defaults.DepartureLimit = DefaultDepartureLimit
	}
	if defaults.ForecastHours <= 0 {
		defaults.ForecastHours = DefaultForecastHours
	}
	if len(defaults.Palette) == 0 {
		defaults.Palette = DefaultPalette
	}
	return &boardAPI{
		stations:   newStationFetcher(),
		departures: newDeparturesFetcher(clk),
		weather:    newWeatherFetcher(clk),
		index:      index,
		clk:        clk,
		defaults:   defaults,
		transport:  transport,
		collector:  collector,
	}
}

// View resolves the station, pulls both feeds and builds the merged view.
// "now" is captured once up front so every sample in the response is judged
// against the identical cutoff. Each feed is called exactly once; any failure
// propagates to the caller as-is.
func (b *boardAPI) View(stationName string, opts ViewOptions) (View, error) {
	now := b.clk.now()
	limit := opts.DepartureLimit
	if limit <= 0 {
		limit = b.defaults.DepartureLimit
	}
	hours := opts.ForecastHours
	if hours <= 0 {
		hours = b.defaults.ForecastHours
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = b.defaults.Palette
	}

	var station Station
	err := b.observe(metrics.FeedLocations, func() error {
		var err error
		station, err = b.stations.resolve(stationName)
		return err
	})
	if err != nil {
		return View{}, err
	}

	var events []ArrivalEvent
	err = b.observe(metrics.FeedDepartures, func() error {
		var err error
		// Over-fetch a little so stale records do not shrink the window.
		events, err = b.departures.fetchDepartures(station.ID, limit+3, b.transport)
		return err
	})
	if err != nil {
		return View{}, err
	}

	var samples []HourlySample
	err = b.observe(metrics.FeedForecast, func() error {
		var err error
		samples, err = b.weather.fetchForecast(station.Lat, station.Lon)
		return err
	})
	if err != nil {
		return View{}, err
	}

	arrivals := SelectDepartures(events, now, limit)
	colors, err := AssignColors(arrivals, palette)
	if err != nil {
		return View{}, err
	}
	for i := range arrivals {
		arrivals[i].Color = colors[arrivals[i].Destination]
	}

	view := View{
		StationName: station.Name,
		Departures:  arrivals,
		Colors:      colors,
		Forecast:    SelectForecast(samples, now, hours),
	}
	if next, ok := NextHourDetail(samples, now); ok {
		view.NextHour = &next
	}
	b.collector.ViewsRendered.Inc()
	return view, nil
}

func (b *boardAPI) Suggest(query string) []string {
	b.collector.SuggestQueries.Inc()
	return b.index.Suggest(query)
}

func (b *boardAPI) StationNames() []string {
	return b.index.Names()
}

func (b *boardAPI) observe(feed string, call func() error) error {
	b.collector.UpstreamRequests.WithLabelValues(feed).Inc()
	start := time.Now()
	err := call()
	b.collector.UpstreamDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
	if err != nil {
		b.collector.UpstreamErrors.WithLabelValues(feed).Inc()
	}
	return err
}
