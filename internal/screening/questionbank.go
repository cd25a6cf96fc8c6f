package screening

// Question is one item of an instrument. IDs are 1-based and stable within
// an instrument. Each option already carries its final contribution to the
// total score, so no reverse-scoring happens at runtime.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option is a selectable answer with its point value.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// HasValue reports whether v is one of the question's option values.
func (q Question) HasValue(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Questions returns the ordered item list of an instrument. The returned
// slice is shared, read-only bank data; callers must not modify it.
// Panics on an unknown instrument: the bank is closed and static, so an
// unknown value is a programmer error.
func Questions(i Instrument) []Question {
	switch i {
	case EPDS:
		return epdsQuestions
	case PHQ9:
		return phq9Questions
	}
	panic("screening: unknown instrument " + string(i))
}

// Clinical text is reproduced verbatim from the published instruments.
// EPDS items 1-2 list options from least to most symptomatic, items 3-10
// from most to least; the per-option values encode the correct score either way.
var epdsQuestions = []Question{
	{
		ID:   1,
		Text: "I have been able to laugh and see the funny side of things",
		Options: []Option{
			{Value: 0, Label: "As much as I always could"},
			{Value: 1, Label: "Not quite so much now"},
			{Value: 2, Label: "Definitely not so much now"},
			{Value: 3, Label: "Not at all"},
		},
	},
	{
		ID:   2,
		Text: "I have looked forward with enjoyment to things",
		Options: []Option{
			{Value: 0, Label: "As much as I ever did"},
			{Value: 1, Label: "Rather less than I used to"},
			{Value: 2, Label: "Definitely less than I used to"},
			{Value: 3, Label: "Hardly at all"},
		},
	},
	{
		ID:   3,
		Text: "I have blamed myself unnecessarily when things went wrong",
		Options: []Option{
			{Value: 3, Label: "Yes, most of the time"},
			{Value: 2, Label: "Yes, some of the time"},
			{Value: 1, Label: "Not very often"},
			{Value: 0, Label: "No, never"},
		},
	},
	{
		ID:   4,
		Text: "I have been anxious or worried for no good reason",
		Options: []Option{
			{Value: 3, Label: "Yes, very often"},
			{Value: 2, Label: "Yes, sometimes"},
			{Value: 1, Label: "Hardly ever"},
			{Value: 0, Label: "No, not at all"},
		},
	},
	{
		ID:   5,
		Text: "I have felt scared or panicky for no very good reason",
		Options: []Option{
			{Value: 3, Label: "Yes, quite a lot"},
			{Value: 2, Label: "Yes, sometimes"},
			{Value: 1, Label: "No, not much"},
			{Value: 0, Label: "No, not at all"},
		},
	},
	{
		ID:   6,
		Text: "Things have been getting on top of me",
		Options: []Option{
			{Value: 3, Label: "Yes, most of the time I haven't been able to cope at all"},
			{Value: 2, Label: "Yes, sometimes I haven't been coping as well as usual"},
			{Value: 1, Label: "No, most of the time I have coped quite well"},
			{Value: 0, Label: "No, I have been coping as well as ever"},
		},
	},
	{
		ID:   7,
		Text: "I have been so unhappy that I have had difficulty sleeping",
		Options: []Option{
			{Value: 3, Label: "Yes, most of the time"},
			{Value: 2, Label: "Yes, sometimes"},
			{Value: 1, Label: "Not very often"},
			{Value: 0, Label: "No, not at all"},
		},
	},
	{
		ID:   8,
		Text: "I have felt sad or miserable",
		Options: []Option{
			{Value: 3, Label: "Yes, most of the time"},
			{Value: 2, Label: "Yes, quite often"},
			{Value: 1, Label: "Not very often"},
			{Value: 0, Label: "No, not at all"},
		},
	},
	{
		ID:   9,
		Text: "I have been so unhappy that I have been crying",
		Options: []Option{
			{Value: 3, Label: "Yes, most of the time"},
			{Value: 2, Label: "Yes, quite often"},
			{Value: 1, Label: "Only occasionally"},
			{Value: 0, Label: "No, never"},
		},
	},
	{
		ID:   10,
		Text: "The thought of harming myself has occurred to me",
		Options: []Option{
			{Value: 3, Label: "Yes, quite often"},
			{Value: 2, Label: "Sometimes"},
			{Value: 1, Label: "Hardly ever"},
			{Value: 0, Label: "Never"},
		},
	},
}

var phq9Options = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

var phq9Questions = []Question{
	{ID: 1, Text: "Little interest or pleasure in doing things", Options: phq9Options},
	{ID: 2, Text: "Feeling down, depressed, or hopeless", Options: phq9Options},
	{ID: 3, Text: "Trouble falling or staying asleep, or sleeping too much", Options: phq9Options},
	{ID: 4, Text: "Feeling tired or having little energy", Options: phq9Options},
	{ID: 5, Text: "Poor appetite or overeating", Options: phq9Options},
	{ID: 6, Text: "Feeling bad about yourself, or that you are a failure or have let yourself or your family down", Options: phq9Options},
	{ID: 7, Text: "Trouble concentrating on things, such as reading the newspaper or watching television", Options: phq9Options},
	{ID: 8, Text: "Moving or speaking so slowly that other people could have noticed, or the opposite, being so fidgety or restless that you have been moving around a lot more than usual", Options: phq9Options},
	{ID: 9, Text: "Thoughts that you would be better off dead, or of hurting yourself in some way", Options: phq9Options},
}
