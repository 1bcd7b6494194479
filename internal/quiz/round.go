package quiz

import (
	"slices"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/progress"
)

// StreakCelebration is the streak length at which the UI celebrates.
const StreakCelebration = 2

// OptionState is how an answer option should be displayed.
type OptionState int

const (
	OptionNeutral     OptionState = iota // nothing selected yet
	OptionCorrect                        // the correct option, once anything is selected
	OptionChosenWrong                    // the selected option when it is wrong
	OptionDimmed                         // every other option once something is selected
)

// Complete is the outcome of a finished round.
type Complete struct {
	Score   int
	Total   int
	Correct int
}

// Round is one playthrough of a category's unanswered questions, easiest first.
type Round struct {
	questions  []catalog.Question
	index      int
	selected   int // -1 when nothing is selected
	correct    bool
	score      int
	streak     int
	numCorrect int
	finished   bool
}

// Start builds a round from the category's questions that are not in answered.
// Questions are stable-sorted by ascending difficulty, so catalog order breaks ties.
// A round with no questions is finished immediately with a zero result.
func Start(cat catalog.Category, answered progress.Set) *Round {
	var pending []catalog.Question
	for _, q := range cat.Questions {
		if !answered.Has(q.ID) {
			pending = append(pending, q)
		}
	}

	slices.SortStableFunc(pending, func(a, b catalog.Question) int {
		return int(a.Difficulty) - int(b.Difficulty)
	})

	return &Round{
		questions:  pending,
		selected:   -1,
		finished:   len(pending) == 0,
	}
}

// Questions returns the round's questions in play order.
func (r *Round) Questions() []catalog.Question {
	return r.questions
}

// Done reports whether the round has completed.
func (r *Round) Done() bool {
	return r.finished
}

// Result returns the round outcome so far. Final once Done is true.
func (r *Round) Result() Complete {
	return Complete{Score: r.score, Total: len(r.questions), Correct: r.numCorrect}
}

// Current returns the question being shown. ok is false once the round is done.
func (r *Round) Current() (catalog.Question, bool) {
	if r.finished || r.index >= len(r.questions) {
		return catalog.Question{}, false
	}
	return r.questions[r.index], true
}

// Submit answers the current question with the given option index.
// It returns false and changes nothing when an answer is already selected,
// the round is done, or the option index is out of range.
func (r *Round) Submit(option int) bool {
	q, ok := r.Current()
	if !ok || r.selected >= 0 {
		return false
	}
	if option < 0 || option >= len(q.Options) {
		return false
	}

	r.selected = option
	r.correct = option == q.CorrectIndex
	if r.correct {
		r.score += q.Difficulty.Points()
		r.streak++
		r.numCorrect++
	} else {
		r.streak = 0
	}
	return true
}

// Advance moves past the answered current question. On the last question it
// finishes the round and returns its result with ok true. Advancing before an
// answer is selected is ignored.
func (r *Round) Advance() (Complete, bool) {
	if r.finished || r.selected < 0 {
		return Complete{}, false
	}

	if r.index+1 >= len(r.questions) {
		r.finished = true
		return r.Result(), true
	}

	r.index++
	r.selected = -1
	r.correct = false
	return Complete{}, false
}

// Position returns the 1-based position of the current question.
func (r *Round) Position() int {
	return r.index + 1
}

// Size returns the number of questions in the round.
func (r *Round) Size() int {
	return len(r.questions)
}

// IsLast reports whether the current question is the final one.
func (r *Round) IsLast() bool {
	return r.index+1 >= len(r.questions)
}

// Score returns the points earned so far this round.
func (r *Round) Score() int {
	return r.score
}

// Streak returns the current run of consecutive correct answers.
func (r *Round) Streak() int {
	return r.streak
}

// OnStreak reports whether the streak is long enough to celebrate.
func (r *Round) OnStreak() bool {
	return r.streak >= StreakCelebration
}

// Selected returns the chosen option for the current question, if any.
func (r *Round) Selected() (int, bool) {
	if r.selected < 0 {
		return 0, false
	}
	return r.selected, true
}

// IsCorrect reports whether the current selection is correct.
func (r *Round) IsCorrect() bool {
	return r.selected >= 0 && r.correct
}

// OptionState returns the display state of option i of the current question.
func (r *Round) OptionState(i int) OptionState {
	q, ok := r.Current()
	if !ok || r.selected < 0 {
		return OptionNeutral
	}
	switch {
	case i == q.CorrectIndex:
		return OptionCorrect
	case i == r.selected:
		return OptionChosenWrong
	default:
		return OptionDimmed
	}
}
