package board

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const SuggestLimit = 10

// StationIndex holds the known station names in source order. It is loaded
// once at startup and never written afterwards, so concurrent reads need no
// locking. Duplicate names in the source survive the load; lookup is a plain
// scan, not a set operation.
type StationIndex struct {
	names []string
}

// LoadStationIndex reads station names from a CSV record source with a
// single station_name column. A header row is skipped when present.
func LoadStationIndex(r io.Reader) (*StationIndex, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("problem reading station records: %v", err)
	}
	names := make([]string, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		if i == 0 && strings.EqualFold(rec[0], "station_name") {
			continue
		}
		names = append(names, rec[0])
	}
	return &StationIndex{names: names}, nil
}

func LoadStationIndexFromFile(path string) (*StationIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem opening station file: %v", err)
	}
	defer f.Close()
	return LoadStationIndex(f)
}

// Names returns a copy of the full index for client-side filtering.
func (ix *StationIndex) Names() []string {
	result := make([]string, len(ix.names))
	copy(result, ix.names)
	return result
}

// Suggest returns every station whose name starts with the query, ignoring
// case, in source order, capped at SuggestLimit entries. An empty query
// returns nothing rather than the whole index.
func (ix *StationIndex) Suggest(query string) []string {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	result := []string{}
	for _, name := range ix.names {
		if !strings.HasPrefix(strings.ToLower(name), q) {
			continue
		}
		result = append(result, name)
		if len(result) >= SuggestLimit {
			break
		}
	}
	return result
}
