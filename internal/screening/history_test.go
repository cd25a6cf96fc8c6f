package screening

import (
	"testing"
	"time"
)

func historyFixture() []Result {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Result{
		{ID: "a", Instrument: EPDS, Timestamp: base, Score: 4, Interpretation: Interpret(EPDS, 4)},
		{ID: "b", Instrument: PHQ9, Timestamp: base.Add(24 * time.Hour), Score: 11, Interpretation: Interpret(PHQ9, 11)},
		{ID: "c", Instrument: EPDS, Timestamp: base.Add(48 * time.Hour), Score: 14, Interpretation: Interpret(EPDS, 14)},
		{ID: "d", Instrument: EPDS, Timestamp: base.Add(48 * time.Hour), Score: 9, Interpretation: Interpret(EPDS, 9)},
	}
}

func TestFilterByInstrument(t *testing.T) {
	results := historyFixture()

	epds := FilterByInstrument(results, EPDS)
	if len(epds) != 3 {
		t.Errorf("got %d EPDS results, want 3", len(epds))
	}
	all := FilterByInstrument(results, "")
	if len(all) != 4 {
		t.Errorf("got %d unfiltered results, want 4", len(all))
	}
}

func TestLastNOrdering(t *testing.T) {
	results := historyFixture()

	top := LastN(results, 3)
	if len(top) != 3 {
		t.Fatalf("got %d results, want 3", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Timestamp.After(top[i-1].Timestamp) {
			t.Errorf("results not in descending timestamp order at %d", i)
		}
	}
	// c and d share a timestamp; stable sort keeps insertion order
	if top[0].ID != "c" || top[1].ID != "d" {
		t.Errorf("tie not broken by insertion order: %s, %s", top[0].ID, top[1].ID)
	}

	if got := LastN(results, 99); len(got) != 4 {
		t.Errorf("LastN(99) returned %d results, want 4", len(got))
	}
	if got := LastN(results, 0); len(got) != 0 {
		t.Errorf("LastN(0) returned %d results, want 0", len(got))
	}
}

func TestLastNDoesNotMutateInput(t *testing.T) {
	results := historyFixture()
	LastN(results, 4)
	if results[0].ID != "a" || results[3].ID != "d" {
		t.Error("LastN reordered the caller's slice")
	}
}

func TestLatest(t *testing.T) {
	results := historyFixture()

	latest, found := Latest(results)
	if !found {
		t.Fatal("Latest() found = false on non-empty history")
	}
	if top := LastN(results, 1); latest.ID != top[0].ID {
		t.Errorf("Latest() = %s, LastN(1)[0] = %s", latest.ID, top[0].ID)
	}

	if _, found := Latest(nil); found {
		t.Error("Latest(nil) found = true; history must start empty")
	}
}

func TestSeverityOverTime(t *testing.T) {
	points := SeverityOverTime(historyFixture())
	if len(points) != 4 {
		t.Fatalf("got %d trend points, want 4", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp.Before(points[i-1].Timestamp) {
			t.Errorf("trend not in ascending time order at %d", i)
		}
	}
	if points[0].Severity != "Low Likelihood" || points[0].Color != ColorGreen {
		t.Errorf("first point = %q/%s, want Low Likelihood/green", points[0].Severity, points[0].Color)
	}
}
