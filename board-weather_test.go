package board

import (
	"testing"
	"time"
)

func hourlyAt(t time.Time, temp float64, code int) HourlySample {
	return HourlySample{Time: t, Temperature: temp, Code: code}
}

func TestSelectForecastWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	samples := []HourlySample{
		hourlyAt(now.Add(-2*time.Hour), 12.0, 0),
		hourlyAt(now.Add(-1*time.Hour), 13.0, 0),
		hourlyAt(now, 14.0, 1),
		hourlyAt(now.Add(1*time.Hour), 15.5, 2),
		hourlyAt(now.Add(2*time.Hour), 16.0, 3),
	}

	got := SelectForecast(samples, now, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}
	// Inclusive lower bound: the sample at exactly now is kept.
	if got[0].Label != "08:00" || got[1].Label != "09:00" {
		t.Errorf("unexpected window: %s, %s", got[0].Label, got[1].Label)
	}
	if got[1].Temperature != 15.5 || got[1].Symbol != "⛅" {
		t.Errorf("unexpected sample: %+v", got[1])
	}
}

func TestSelectForecastNeverExceedsCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	samples := make([]HourlySample, 0, 48)
	for i := 0; i < 48; i++ {
		samples = append(samples, hourlyAt(now.Add(time.Duration(i)*time.Hour), 10.0, 0))
	}

	for _, limit := range []int{6, 12} {
		if got := SelectForecast(samples, now, limit); len(got) != limit {
			t.Errorf("cap %d: expected %d samples, got %d", limit, limit, len(got))
		}
	}
}

func TestNextHourDetailStrictlyAfterNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 12, 0, 0, time.UTC)
	samples := []HourlySample{
		hourlyAt(now.Add(-12*time.Minute), 14.0, 1),
		{Time: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Temperature: 15.5, Code: 61, FeelsLike: 14.1, Precipitation: 0.4, WindSpeed: 11.0},
		hourlyAt(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), 16.0, 3),
	}

	got, ok := NextHourDetail(samples, now)
	if !ok {
		t.Fatal("expected a next-hour sample")
	}
	if got.Window != "08:12 → 09:00" {
		t.Errorf("unexpected window label: %s", got.Window)
	}
	if got.Temperature != 15.5 || got.FeelsLike != 14.1 || got.Precipitation != 0.4 || got.WindSpeed != 11.0 {
		t.Errorf("unexpected detail: %+v", got)
	}
	if got.Symbol != "🌧️" {
		t.Errorf("unexpected symbol: %s", got.Symbol)
	}
}

func TestNextHourDetailSkipsSampleAtNow(t *testing.T) {
	// A sample at exactly now describes the hour already underway.
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	samples := []HourlySample{
		hourlyAt(now, 14.0, 1),
		hourlyAt(now.Add(time.Hour), 15.0, 2),
	}

	got, ok := NextHourDetail(samples, now)
	if !ok {
		t.Fatal("expected a next-hour sample")
	}
	if got.Window != "08:00 → 09:00" {
		t.Errorf("unexpected window label: %s", got.Window)
	}
}

func TestNextHourDetailNoFutureSample(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	samples := []HourlySample{
		hourlyAt(now.Add(-2*time.Hour), 14.0, 1),
		hourlyAt(now.Add(-1*time.Hour), 15.0, 2),
	}

	if _, ok := NextHourDetail(samples, now); ok {
		t.Error("expected no next-hour sample from a stale feed")
	}
}

func TestConditionSymbolIsTotal(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "☀️"},
		{3, "☁️"},
		{45, "🌫️"},
		{95, "⛈️"},
		{42, "❓"},
		{-1, "❓"},
		{100000, "❓"},
	}
	for _, tc := range tests {
		if got := ConditionSymbol(tc.code); got != tc.want {
			t.Errorf("code %d: expected %s, got %s", tc.code, tc.want, got)
		}
	}
}
