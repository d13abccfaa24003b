package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DefaultStation string
	StationsFile   string
	Location       *time.Location
	DepartureLimit int
	ForecastHours  int
	TransportTypes []string
	Palette        []string
}

// Load reads configuration from the environment, with a .env file merged in
// when present. Palette stays nil when unset so the caller can fall back to
// the built-in palette.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{
		DefaultStation: getenvDefault("DEFAULT_STATION", "Maillingerstrasse, München"),
		StationsFile:   getenvDefault("STATIONS_FILE", "stations.csv"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = port
	} else {
		cfg.Port = 8080
	}

	zone := getenvDefault("TIMEZONE", "Europe/Berlin")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %q", zone)
	}
	cfg.Location = loc

	if v := os.Getenv("DEPARTURE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid DEPARTURE_LIMIT: %q", v)
		}
		cfg.DepartureLimit = limit
	} else {
		cfg.DepartureLimit = 12
	}

	if v := os.Getenv("FORECAST_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid FORECAST_HOURS: %q", v)
		}
		cfg.ForecastHours = hours
	} else {
		cfg.ForecastHours = 12
	}

	cfg.TransportTypes = splitList(getenvDefault("TRANSPORT_TYPES", "UBAHN"))
	if len(cfg.TransportTypes) == 0 {
		return nil, fmt.Errorf("invalid TRANSPORT_TYPES: %q", os.Getenv("TRANSPORT_TYPES"))
	}

	if v := os.Getenv("PALETTE"); v != "" {
		cfg.Palette = splitList(v)
		if len(cfg.Palette) == 0 {
			return nil, fmt.Errorf("invalid PALETTE: %q", v)
		}
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	result := []string{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}
