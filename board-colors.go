package board

import "errors"

var ErrEmptyPalette = errors.New("palette must hold at least one color")

var DefaultPalette = []string{
	"#0078d7",
	"#d83b01",
	"#107c10",
	"#5c2d91",
	"#ca5010",
	"#038387",
}

// AssignColors maps each distinct destination in arrivals to a palette color.
// The first destination seen gets the first color, the second distinct
// destination the second, wrapping modulo the palette size once it runs out.
// The map is rebuilt per batch; there is no memory across requests.
func AssignColors(arrivals []DisplayArrival, palette []string) (map[string]string, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	seen := 0
	colors := make(map[string]string)
	for _, a := range arrivals {
		if _, ok := colors[a.Destination]; ok {
			continue
		}
		colors[a.Destination] = palette[seen%len(palette)]
		seen++
	}
	return colors, nil
}
