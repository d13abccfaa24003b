package board

import (
	"fmt"
	"time"
)

const DefaultForecastHours = 12

// HourlySample is one instant of the hourly forecast, zipped out of the
// feed's parallel arrays by the fetcher.
type HourlySample struct {
	Time          time.Time
	Temperature   float64
	Code          int
	FeelsLike     float64
	Precipitation float64
	WindSpeed     float64
}

// DisplayHour is one cell of the rolling forecast table.
type DisplayHour struct {
	Label       string
	Temperature float64
	Symbol      string
}

// NextHour is the detailed forecast for the first sample after now. Window
// describes the span from now to that sample, e.g. "15:12 → 16:00".
type NextHour struct {
	Window        string
	Temperature   float64
	FeelsLike     float64
	Precipitation float64
	WindSpeed     float64
	Symbol        string
}

// SelectForecast keeps every sample at or after now, in feed order, up to
// limit samples.
func SelectForecast(samples []HourlySample, now time.Time, limit int) []DisplayHour {
	result := make([]DisplayHour, 0, limit)
	for _, s := range samples {
		if s.Time.Before(now) {
			continue
		}
		result = append(result, DisplayHour{
			Label:       s.Time.Format("15:04"),
			Temperature: s.Temperature,
			Symbol:      ConditionSymbol(s.Code),
		})
		if len(result) >= limit {
			break
		}
	}
	return result
}

// NextHourDetail returns the first sample strictly after now. A sample at
// exactly now describes the hour already underway, so it is skipped. Reports
// false when the feed holds no future sample.
func NextHourDetail(samples []HourlySample, now time.Time) (NextHour, bool) {
	for _, s := range samples {
		if !s.Time.After(now) {
			continue
		}
		return NextHour{
			Window:        fmt.Sprintf("%s → %s", now.Format("15:04"), s.Time.Format("15:04")),
			Temperature:   s.Temperature,
			FeelsLike:     s.FeelsLike,
			Precipitation: s.Precipitation,
			WindSpeed:     s.WindSpeed,
			Symbol:        ConditionSymbol(s.Code),
		}, true
	}
	return NextHour{}, false
}

// Open-Meteo weather codes: https://open-meteo.com/en/docs
var conditionSymbols = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌦️",
	61: "🌧️",
	63: "🌧️",
	65: "🌧️",
	71: "🌨️",
	73: "🌨️",
	75: "🌨️",
	80: "🌦️",
	81: "🌦️",
	82: "🌦️",
	95: "⛈️",
	96: "⛈️",
	99: "⛈️",
}

const unknownConditionSymbol = "❓"

// ConditionSymbol is total: any code outside the known set maps to the
// fallback symbol.
func ConditionSymbol(code int) string {
	symbol, ok := conditionSymbols[code]
	if !ok {
		return unknownConditionSymbol
	}
	return symbol
}
