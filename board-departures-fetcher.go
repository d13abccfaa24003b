package board

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type departuresFetcher struct {
	c   http.Client
	url func(stationID string, limit int, modes []string) string
	clk *clock
}

func newDeparturesFetcher(clk *clock) *departuresFetcher {
	c := http.Client{Timeout: time.Duration(5) * time.Second}
	return &departuresFetcher{
		c: c,
		url: func(stationID string, limit int, modes []string) string {
			return fmt.Sprintf(DeparturesAPI, stationID, limit, strings.Join(modes, ","))
		},
		clk: clk,
	}
}

type mvgDeparture struct {
	PlannedDepartureTime  int64  `json:"plannedDepartureTime"`
	RealtimeDepartureTime int64  `json:"realtimeDepartureTime"`
	Label                 string `json:"label"`
	Destination           string `json:"destination"`
	Cancelled             bool   `json:"cancelled"`
}

// departureMillis prefers the realtime estimate; the feed omits it for
// departures without live tracking.
func (d mvgDeparture) departureMillis() int64 {
	if d.RealtimeDepartureTime != 0 {
		return d.RealtimeDepartureTime
	}
	return d.PlannedDepartureTime
}

func (df *departuresFetcher) fetchDepartures(stationID string, limit int, modes []string) ([]ArrivalEvent, error) {
	url := df.url(stationID, limit, modes)
	resp, err := df.c.Get(url)
	if err != nil {
		return nil, fmt.Errorf("problem fetching departure data from API: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("problem reading departure data from response: %v", err)
	}
	mvgDepartures := []mvgDeparture{}
	if err := json.Unmarshal(body, &mvgDepartures); err != nil {
		return nil, fmt.Errorf("problem parsing departure response data from MVG: %v", err)
	}
	result := make([]ArrivalEvent, 0, len(mvgDepartures))
	for _, dep := range mvgDepartures {
		if dep.Cancelled {
			continue
		}
		result = append(result, ArrivalEvent{
			Line:        dep.Label,
			Destination: dep.Destination,
			Departure:   df.clk.fromEpochMillis(dep.departureMillis()),
		})
	}
	return result, nil
}
