package quiz

import (
	"errors"
	"time"
)

// State is the quiz session's lifecycle phase.
type State int

const (
	StateQuestion      State = iota // A question is displayed, awaiting or holding a selection
	StateCalculating                // Final answers submitted, recommendation in flight
	StateResults                    // Ranked recommendations available
	StateProductChosen              // Terminal: user accepted a recommended product
	StateBrowseAll                  // Terminal: user left for the filtered catalog
	StateCancelled                  // Terminal: user closed without completing
)

func (s State) String() string {
	switch s {
	case StateQuestion:
		return "question"
	case StateCalculating:
		return "calculating"
	case StateResults:
		return "results"
	case StateProductChosen:
		return "product_chosen"
	case StateBrowseAll:
		return "browse_all"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

var (
	ErrNoQuestions      = errors.New("quiz has no questions")
	ErrUnknownOption    = errors.New("option not part of current question")
	ErrNoAnswerYet      = errors.New("current question has no answer")
	ErrNothingToGoBack  = errors.New("already at the first question")
	ErrQuizIncomplete   = errors.New("not all questions answered")
	ErrNoResults        = errors.New("results not computed yet")
	ErrSessionFinished  = errors.New("session already in a terminal state")
	ErrProductNotInList = errors.New("product not among the results")
)

// Session owns the whole state of one open quiz: cursor, answer history and
// results. One Session is created per quiz open and discarded on close; it is
// never persisted and never shared across sessions.
//
// The cursor points at the question currently displayed. A selection for the
// cursor question is appended to History, so len(History) == cursor while the
// displayed question is unanswered and cursor+1 once it is. Back truncates
// History to the cursor and steps the cursor down, leaving the prior
// question's own answer in place as the restored selection. History is only
// ever appended to or truncated, never reordered, so the profile is always a
// fold over a prefix of the answer sequence.
type Session struct {
	ID           string
	QuizID       string
	LandingID    string
	Questions    []Question
	ResultsCount int

	cursor  int
	history []Answer
	results []ScoredProduct
	state   State

	CreatedAt time.Time
}

// NewSession starts a session at the first question.
func NewSession(id, quizID, landingID string, questions []Question, resultsCount int) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:           id,
		QuizID:       quizID,
		LandingID:    landingID,
		Questions:    questions,
		ResultsCount: resultsCount,
		state:        StateQuestion,
		CreatedAt:    time.Now(),
	}, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// StepIndex is the number of answered questions.
func (s *Session) StepIndex() int { return len(s.history) }

// TotalSteps is the number of questions in the quiz.
func (s *Session) TotalSteps() int { return len(s.Questions) }

// Current returns the question at the cursor.
func (s *Session) Current() Question { return s.Questions[s.cursor] }

// Selected returns the option ids picked for the cursor question, if any.
// Non-nil after answering or after navigating back to an answered question.
func (s *Session) Selected() []string {
	if s.cursor < len(s.history) {
		return s.history[s.cursor].OptionIDs
	}
	return nil
}

// History returns a copy of the answer history.
func (s *Session) History() []Answer {
	out := make([]Answer, len(s.history))
	copy(out, s.history)
	return out
}

// Answered reports whether every question has an answer.
func (s *Session) Answered() bool { return len(s.history) == len(s.Questions) }

// Answer records a selection for the cursor question and advances to the
// next question when one remains. Re-answering after Back truncates the
// history from the cursor before appending, so the history always stays a
// prefix of the full answer sequence.
func (s *Session) Answer(optionIDs []string) error {
	if s.state != StateQuestion {
		return ErrSessionFinished
	}
	q := s.Questions[s.cursor]
	for _, id := range optionIDs {
		if _, ok := findOption(q, id); !ok {
			return ErrUnknownOption
		}
	}
	if s.cursor < len(s.history) {
		s.history = s.history[:s.cursor]
	}
	s.history = append(s.history, Answer{QuestionID: q.ID, OptionIDs: optionIDs})
	if s.cursor+1 < len(s.Questions) {
		s.cursor++
	}
	return nil
}

// Back returns to the previous question, restoring its recorded selection
// and dropping every answer past it.
func (s *Session) Back() error {
	if s.state != StateQuestion {
		return ErrSessionFinished
	}
	if s.cursor == 0 {
		return ErrNothingToGoBack
	}
	if s.cursor < len(s.history) {
		s.history = s.history[:s.cursor]
	}
	s.cursor--
	return nil
}

// Restart clears history and results and returns to the first question.
func (s *Session) Restart() {
	s.cursor = 0
	s.history = nil
	s.results = nil
	s.state = StateQuestion
}

// Profile recomputes the preference profile as the fold of the history.
func (s *Session) Profile() PreferenceProfile {
	return Accumulate(s.history, s.Questions)
}

// BeginCalculating transitions into the scoring phase. Every question must
// be answered first.
func (s *Session) BeginCalculating() error {
	if s.state != StateQuestion {
		return ErrSessionFinished
	}
	if !s.Answered() {
		return ErrQuizIncomplete
	}
	s.state = StateCalculating
	return nil
}

// SetResults stores the ranked recommendations and enters Results.
func (s *Session) SetResults(results []ScoredProduct) {
	s.results = results
	s.state = StateResults
}

// Results returns the ranked recommendations once computed.
func (s *Session) Results() ([]ScoredProduct, error) {
	if s.results == nil {
		return nil, ErrNoResults
	}
	return s.results, nil
}

// Choose marks a recommended product as accepted and terminates the session.
// The chosen product is returned so the caller can seed the financing wizard.
func (s *Session) Choose(productID string) (ScoredProduct, error) {
	if s.state != StateResults {
		return ScoredProduct{}, ErrNoResults
	}
	for _, r := range s.results {
		if r.Product.ID == productID {
			s.state = StateProductChosen
			return r, nil
		}
	}
	return ScoredProduct{}, ErrProductNotInList
}

// Browse terminates the session toward the filtered catalog, handing back
// the results alongside the projected filters.
func (s *Session) Browse() ([]ScoredProduct, map[string]string, error) {
	if s.state != StateResults {
		return nil, nil, ErrNoResults
	}
	s.state = StateBrowseAll
	return s.results, ProjectToFilters(s.Profile()), nil
}

// Cancel terminates the session without completing.
func (s *Session) Cancel() {
	s.state = StateCancelled
}
