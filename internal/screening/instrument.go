package screening

import "fmt"

// Instrument identifies one of the supported clinical screening questionnaires.
type Instrument string

const (
	// EPDS is the Edinburgh Postnatal Depression Scale (10 items, 0-30).
	EPDS Instrument = "epds"
	// PHQ9 is the Patient Health Questionnaire-9 (9 items, 0-27).
	PHQ9 Instrument = "phq9"
)

// Instruments returns every supported instrument.
func Instruments() []Instrument {
	return []Instrument{EPDS, PHQ9}
}

// ParseInstrument maps a wire value onto an Instrument.
func ParseInstrument(s string) (Instrument, error) {
	switch Instrument(s) {
	case EPDS:
		return EPDS, nil
	case PHQ9:
		return PHQ9, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInstrument, s)
}

// MaxScore is the highest total score the instrument can produce.
func (i Instrument) MaxScore() int {
	switch i {
	case EPDS:
		return 30
	case PHQ9:
		return 27
	}
	panic("screening: unknown instrument " + string(i))
}

// SelfHarmQuestionID is the 1-based id of the item whose answer triggers
// risk escalation when above zero.
func (i Instrument) SelfHarmQuestionID() int {
	switch i {
	case EPDS:
		return 10
	case PHQ9:
		return 9
	}
	panic("screening: unknown instrument " + string(i))
}

// DisplayName is the human-readable instrument title.
func (i Instrument) DisplayName() string {
	switch i {
	case EPDS:
		return "Edinburgh Postnatal Depression Scale"
	case PHQ9:
		return "Patient Health Questionnaire-9"
	}
	panic("screening: unknown instrument " + string(i))
}

// ColorTag is the closed set of severity display tags. Mapping a tag to an
// actual presentation color happens at the UI boundary, never here.
type ColorTag string

const (
	ColorGreen      ColorTag = "green"
	ColorLightGreen ColorTag = "lightgreen"
	ColorYellow     ColorTag = "yellow"
	ColorOrange     ColorTag = "orange"
	ColorRed        ColorTag = "red"
)

// Interpretation is the clinical reading of a total score.
type Interpretation struct {
	SeverityLabel string   `json:"severity_label"`
	Description   string   `json:"description"`
	Color         ColorTag `json:"color"`
}
