package board

import (
	"errors"
	"testing"
)

func arrivalsTo(destinations ...string) []DisplayArrival {
	result := make([]DisplayArrival, 0, len(destinations))
	for _, d := range destinations {
		result = append(result, DisplayArrival{Destination: d})
	}
	return result
}

func TestAssignColorsFirstSeenOrder(t *testing.T) {
	palette := []string{"red", "blue"}

	got, err := AssignColors(arrivalsTo("A", "B", "A"), palette)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	if got["A"] != "red" || got["B"] != "blue" {
		t.Errorf("unexpected assignment: %v", got)
	}
}

func TestAssignColorsWrapsPalette(t *testing.T) {
	palette := []string{"red", "blue"}

	got, err := AssignColors(arrivalsTo("A", "B", "C"), palette)
	if err != nil {
		t.Fatal(err)
	}
	if got["C"] != "red" {
		t.Errorf("expected third destination to wrap to red, got %s", got["C"])
	}
}

func TestAssignColorsDeterministic(t *testing.T) {
	palette := []string{"red", "blue", "green"}
	arrivals := arrivalsTo("Mangfallplatz", "Westfriedhof", "Mangfallplatz", "Olympia-Einkaufszentrum")

	first, err := AssignColors(arrivals, palette)
	if err != nil {
		t.Fatal(err)
	}
	second, err := AssignColors(arrivals, palette)
	if err != nil {
		t.Fatal(err)
	}
	for dest, color := range first {
		if second[dest] != color {
			t.Errorf("%s: expected %s on repeat call, got %s", dest, color, second[dest])
		}
	}
}

func TestAssignColorsReorderingShiftsAssignment(t *testing.T) {
	palette := []string{"red", "blue"}

	got, err := AssignColors(arrivalsTo("B", "A"), palette)
	if err != nil {
		t.Fatal(err)
	}
	if got["B"] != "red" || got["A"] != "blue" {
		t.Errorf("expected assignment to follow appearance order, got %v", got)
	}
}

func TestAssignColorsEmptyPalette(t *testing.T) {
	_, err := AssignColors(arrivalsTo("A"), nil)
	if !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("expected ErrEmptyPalette, got %v", err)
	}
}
