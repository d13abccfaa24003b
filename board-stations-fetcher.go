package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrStationNotFound = errors.New("station not found")

// Station is a resolved stop: the feed identifier plus coordinates for the
// weather lookup.
type Station struct {
	ID       string
	Name     string
	Lat, Lon float64
}

type stationFetcher struct {
	c   http.Client
	url func(string) string
}

func newStationFetcher() *stationFetcher {
	c := http.Client{Timeout: time.Duration(5) * time.Second}
	return &stationFetcher{
		c: c,
		url: func(query string) string {
			return fmt.Sprintf(StationLookupAPI, url.QueryEscape(query))
		},
	}
}

type mvgLocation struct {
	GlobalID  string  `json:"globalId"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// resolve looks a station name up in the MVG location search and returns the
// first STATION match. Addresses and POIs in the response are skipped.
func (sf *stationFetcher) resolve(name string) (Station, error) {
	url := sf.url(name)
	resp, err := sf.c.Get(url)
	if err != nil {
		return Station{}, fmt.Errorf("problem fetching location data from API: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Station{}, fmt.Errorf("problem reading location data from response: %v", err)
	}
	locations := []mvgLocation{}
	if err := json.Unmarshal(body, &locations); err != nil {
		return Station{}, fmt.Errorf("problem parsing location response data from MVG: %v", err)
	}
	for _, loc := range locations {
		if loc.Type != "STATION" {
			continue
		}
		return Station{
			ID:   loc.GlobalID,
			Name: loc.Name,
			Lat:  loc.Latitude,
			Lon:  loc.Longitude,
		}, nil
	}
	return Station{}, ErrStationNotFound
}
