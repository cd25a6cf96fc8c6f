package screening

// band is an inclusive score range with its clinical reading. Bands of one
// instrument partition [0, MaxScore] with no gaps or overlaps.
type band struct {
	lo, hi int
	interp Interpretation
}

var epdsBands = []band{
	{0, 8, Interpretation{
		SeverityLabel: "Low Likelihood",
		Description:   "Your responses suggest a low likelihood of depression. Keep checking in with yourself regularly.",
		Color:         ColorGreen,
	}},
	{9, 12, Interpretation{
		SeverityLabel: "Possible Depression",
		Description:   "Your responses suggest possible depression. Consider monitoring how you feel and talking with someone you trust.",
		Color:         ColorYellow,
	}},
	{13, 30, Interpretation{
		SeverityLabel: "Probable Depression",
		Description:   "Your responses suggest probable depression. We recommend speaking with a healthcare professional.",
		Color:         ColorRed,
	}},
}

var phq9Bands = []band{
	{0, 4, Interpretation{
		SeverityLabel: "Minimal",
		Description:   "Your responses suggest minimal depression symptoms.",
		Color:         ColorGreen,
	}},
	{5, 9, Interpretation{
		SeverityLabel: "Mild",
		Description:   "Your responses suggest mild depression symptoms. Self-care and support can help.",
		Color:         ColorLightGreen,
	}},
	{10, 14, Interpretation{
		SeverityLabel: "Moderate",
		Description:   "Your responses suggest moderate depression symptoms. Consider reaching out to a professional.",
		Color:         ColorYellow,
	}},
	{15, 19, Interpretation{
		SeverityLabel: "Moderately Severe",
		Description:   "Your responses suggest moderately severe depression symptoms. We recommend professional support.",
		Color:         ColorOrange,
	}},
	{20, 27, Interpretation{
		SeverityLabel: "Severe",
		Description:   "Your responses suggest severe depression symptoms. Please reach out to a healthcare professional soon.",
		Color:         ColorRed,
	}},
}

func bandsFor(i Instrument) []band {
	switch i {
	case EPDS:
		return epdsBands
	case PHQ9:
		return phq9Bands
	}
	panic("screening: unknown instrument " + string(i))
}

// Interpret maps a total score onto its severity band. Scores cannot leave
// [0, MaxScore] given how Score works; if one ever did, it clamps to the
// nearest band instead of erroring.
func Interpret(i Instrument, score int) Interpretation {
	bands := bandsFor(i)
	if score < 0 {
		return bands[0].interp
	}
	for _, b := range bands {
		if score >= b.lo && score <= b.hi {
			return b.interp
		}
	}
	return bands[len(bands)-1].interp
}
