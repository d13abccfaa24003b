package board

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type weatherFetcher struct {
	c   http.Client
	url func(lat, lon float64) string
	clk *clock
}

func newWeatherFetcher(clk *clock) *weatherFetcher {
	c := http.Client{Timeout: time.Duration(5) * time.Second}
	return &weatherFetcher{
		c: c,
		url: func(lat, lon float64) string {
			return fmt.Sprintf(ForecastAPI, lat, lon)
		},
		clk: clk,
	}
}

type openMeteoResponse struct {
	Hourly openMeteoHourly `json:"hourly"`
}

type openMeteoHourly struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	FeelsLike     []float64 `json:"apparent_temperature"`
	Code          []int     `json:"weathercode"`
	Precipitation []float64 `json:"precipitation"`
	WindSpeed     []float64 `json:"windspeed_10m"`
}

// samples zips the feed's parallel arrays into one sample per instant. Index
// i describes the same instant across all arrays, so a length mismatch means
// the response is unusable and fails the whole request.
func (h openMeteoHourly) samples(clk *clock) ([]HourlySample, error) {
	n := len(h.Time)
	if len(h.Temperature) != n || len(h.FeelsLike) != n || len(h.Code) != n ||
		len(h.Precipitation) != n || len(h.WindSpeed) != n {
		return nil, fmt.Errorf("hourly arrays are misaligned: %d times vs %d/%d/%d/%d/%d values",
			n, len(h.Temperature), len(h.FeelsLike), len(h.Code), len(h.Precipitation), len(h.WindSpeed))
	}
	result := make([]HourlySample, 0, n)
	for i := 0; i < n; i++ {
		instant, err := clk.parseISO(h.Time[i])
		if err != nil {
			return nil, err
		}
		result = append(result, HourlySample{
			Time:          instant,
			Temperature:   h.Temperature[i],
			Code:          h.Code[i],
			FeelsLike:     h.FeelsLike[i],
			Precipitation: h.Precipitation[i],
			WindSpeed:     h.WindSpeed[i],
		})
	}
	return result, nil
}

func (wf *weatherFetcher) fetchForecast(lat, lon float64) ([]HourlySample, error) {
	url := wf.url(lat, lon)
	resp, err := wf.c.Get(url)
	if err != nil {
		return nil, fmt.Errorf("problem fetching forecast data from API: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("problem reading forecast data from response: %v", err)
	}
	forecast := openMeteoResponse{}
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("problem parsing forecast response data from Open-Meteo: %v", err)
	}
	return forecast.Hourly.samples(wf.clk)
}
