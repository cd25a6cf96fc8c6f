package screening

// SelfHarmRisk reports whether the instrument's self-harm item was answered
// above its zero option. It is evaluated on the raw answers, independent of
// the total score: a low aggregate with a nonzero self-harm answer still
// escalates. A false negative here is a safety-critical defect, so the check
// keys on the numeric value only, never on option label text.
func SelfHarmRisk(i Instrument, answers map[int]int) bool {
	return answers[i.SelfHarmQuestionID()] > 0
}
