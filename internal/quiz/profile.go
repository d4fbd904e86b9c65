package quiz

// Option is a selectable quiz answer and the weights it contributes.
type Option struct {
	ID          string
	Label       string
	Description string
	Icon        IconTag
	Weights     WeightVector
}

// Question is one quiz step with its ordered options.
type Question struct {
	ID      string
	Prompt  string
	Help    string
	Options []Option
}

// Answer records the option(s) picked for a question. Single-select today,
// but the wire format carries a list so multi-select stays possible.
type Answer struct {
	QuestionID string
	OptionIDs  []string
}

// PreferenceProfile is the accumulated WeightVector across all answered
// questions in a session.
type PreferenceProfile struct {
	WeightVector
}

// Accumulate folds a sequence of answers into one preference profile.
// Each answer's option weights are merged per key, later answers winning.
// Answers referencing an unknown question or option are skipped: a stale
// answer must never fail the whole quiz.
func Accumulate(answers []Answer, questions []Question) PreferenceProfile {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var p PreferenceProfile
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		for _, optID := range a.OptionIDs {
			if opt, ok := findOption(q, optID); ok {
				p.WeightVector = p.Merge(opt.Weights)
			}
		}
	}
	return p
}

func findOption(q Question, id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
