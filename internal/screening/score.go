package screening

import "fmt"

// Score sums the answer values of a complete answer map for the instrument.
// Every question of the instrument must be answered; an incomplete map
// returns ErrMissingAnswer rather than silently scoring low. Callers gate
// on Session.CanComplete, so hitting the error here is an invariant breach.
func Score(i Instrument, answers map[int]int) (int, error) {
	total := 0
	for _, q := range Questions(i) {
		v, answered := answers[q.ID]
		if !answered {
			return 0, fmt.Errorf("%w: question %d", ErrMissingAnswer, q.ID)
		}
		total += v
	}
	return total, nil
}
