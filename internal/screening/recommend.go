package screening

// CrisisConfig carries the crisis support text injected into
// recommendations on risk escalation. The hotline entries are configuration
// so deployments can localize numbers without touching scoring logic.
type CrisisConfig struct {
	Hotlines         []string
	DisclosurePrompt string
}

// DefaultCrisisConfig is used when the deployment does not override the
// crisis section in its config file.
func DefaultCrisisConfig() CrisisConfig {
	return CrisisConfig{
		Hotlines: []string{
			"If you are in crisis, call the National Maternal Mental Health Hotline: 1-833-852-6262",
			"You can also call or text the Suicide and Crisis Lifeline: 988",
		},
		DisclosurePrompt: "Your answers mention thoughts of self-harm. Please tell someone you trust how you are feeling, or reach out to one of the numbers above.",
	}
}

var generalRecommendations = []string{
	"Keep track of your mood daily and note what affects it.",
	"Maintain regular sleep, balanced nutrition and gentle exercise.",
}

var midBandRecommendations = map[Instrument][]string{
	EPDS: {
		"Try self-help strategies such as short walks, rest when possible, and asking for practical help at home.",
		"Connecting with other new mothers or a peer support group can make a real difference.",
	},
	PHQ9: {
		"Try self-help strategies such as a daily routine, time outdoors, and staying connected with people.",
		"Peer support groups can help; you do not have to manage this alone.",
	},
}

var upperBandRecommendations = map[Instrument][]string{
	EPDS: {
		"We recommend talking to your doctor, midwife or a mental health professional about how you are feeling.",
		"See the support resources section for counseling services near you.",
	},
	PHQ9: {
		"We recommend a consultation with a mental health professional.",
		"See the support resources section for counseling and treatment options.",
	},
}

// Recommend composes the ordered guidance list for a scored assessment.
// The two general entries always come first, then band-specific guidance.
// On risk escalation the two hotline lines and the disclosure prompt are
// prepended so they always occupy positions 0-2; crisis information must
// never sit below general tips.
func Recommend(i Instrument, score int, interp Interpretation, risk bool, crisis CrisisConfig) []string {
	recs := make([]string, 0, 8)
	recs = append(recs, generalRecommendations...)

	switch interp.Color {
	case ColorLightGreen, ColorYellow:
		recs = append(recs, midBandRecommendations[i]...)
	case ColorOrange, ColorRed:
		recs = append(recs, upperBandRecommendations[i]...)
	}

	if risk {
		head := make([]string, 0, len(crisis.Hotlines)+1)
		head = append(head, crisis.Hotlines...)
		head = append(head, crisis.DisclosurePrompt)
		recs = append(head, recs...)
	}

	return recs
}
