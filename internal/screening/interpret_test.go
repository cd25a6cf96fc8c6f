package screening

import "testing"

func TestInterpretBandsPartitionRange(t *testing.T) {
	// every score in [0, MaxScore] must land in exactly one band
	for _, i := range Instruments() {
		bands := bandsFor(i)
		next := 0
		for _, b := range bands {
			if b.lo != next {
				t.Errorf("%s: band starts at %d, want %d (gap or overlap)", i, b.lo, next)
			}
			next = b.hi + 1
		}
		if next != i.MaxScore()+1 {
			t.Errorf("%s: bands end at %d, want %d", i, next-1, i.MaxScore())
		}

		for s := 0; s <= i.MaxScore(); s++ {
			interp := Interpret(i, s)
			if interp.SeverityLabel == "" || interp.Color == "" {
				t.Fatalf("%s: Interpret(%d) returned empty interpretation", i, s)
			}
		}
	}
}

func TestInterpretCutPoints(t *testing.T) {
	tests := []struct {
		instrument Instrument
		score      int
		label      string
		color      ColorTag
	}{
		{EPDS, 0, "Low Likelihood", ColorGreen},
		{EPDS, 8, "Low Likelihood", ColorGreen},
		{EPDS, 9, "Possible Depression", ColorYellow},
		{EPDS, 12, "Possible Depression", ColorYellow},
		{EPDS, 13, "Probable Depression", ColorRed},
		{EPDS, 30, "Probable Depression", ColorRed},
		{PHQ9, 0, "Minimal", ColorGreen},
		{PHQ9, 4, "Minimal", ColorGreen},
		{PHQ9, 5, "Mild", ColorLightGreen},
		{PHQ9, 9, "Mild", ColorLightGreen},
		{PHQ9, 10, "Moderate", ColorYellow},
		{PHQ9, 14, "Moderate", ColorYellow},
		{PHQ9, 15, "Moderately Severe", ColorOrange},
		{PHQ9, 19, "Moderately Severe", ColorOrange},
		{PHQ9, 20, "Severe", ColorRed},
		{PHQ9, 27, "Severe", ColorRed},
	}

	for _, tt := range tests {
		got := Interpret(tt.instrument, tt.score)
		if got.SeverityLabel != tt.label || got.Color != tt.color {
			t.Errorf("Interpret(%s, %d) = %q/%s, want %q/%s",
				tt.instrument, tt.score, got.SeverityLabel, got.Color, tt.label, tt.color)
		}
	}
}

func TestInterpretClampsOutOfRange(t *testing.T) {
	if got := Interpret(EPDS, -1); got.Color != ColorGreen {
		t.Errorf("Interpret(EPDS, -1) = %s, want green", got.Color)
	}
	if got := Interpret(EPDS, 99); got.Color != ColorRed {
		t.Errorf("Interpret(EPDS, 99) = %s, want red", got.Color)
	}
	if got := Interpret(PHQ9, 28); got.Color != ColorRed {
		t.Errorf("Interpret(PHQ9, 28) = %s, want red", got.Color)
	}
}
