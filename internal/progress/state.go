package progress

import "sort"

// Set is a set of answered question IDs.
type Set map[int]struct{}

// NewSet builds a Set from ids. Duplicates collapse.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. Safe on a nil Set.
func (s Set) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs in the set.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the members in ascending order.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s Set) clone() Set {
	c := make(Set, len(s)+1)
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// State is the durable learner progress: answered question IDs per category
// and the cumulative score across all rounds.
//
// State values are treated as immutable. Every operation in this package
// returns a new State and leaves its input untouched.
type State struct {
	Answered   map[string]Set
	TotalScore int
}

// Zero returns the empty progress state.
func Zero() State {
	return State{Answered: map[string]Set{}}
}

// AnsweredIn returns the answered set for a category (nil if none recorded).
func (s State) AnsweredIn(categoryID string) Set {
	return s.Answered[categoryID]
}

// AnsweredCount returns the number of answered questions across all categories.
func (s State) AnsweredCount() int {
	n := 0
	for _, set := range s.Answered {
		n += set.Len()
	}
	return n
}

// withCategory returns a shallow copy of s whose category map is fresh,
// with categoryID mapped to set.
func (s State) withCategory(categoryID string, set Set) State {
	answered := make(map[string]Set, len(s.Answered)+1)
	for k, v := range s.Answered {
		answered[k] = v
	}
	answered[categoryID] = set
	return State{Answered: answered, TotalScore: s.TotalScore}
}

// RecordAnswer adds questionID to the category's answered set, creating the
// set if absent. Re-recording an ID is a no-op.
func RecordAnswer(s State, categoryID string, questionID int) State {
	current := s.Answered[categoryID]
	if current != nil && current.Has(questionID) {
		return s
	}
	next := current.clone()
	next[questionID] = struct{}{}
	return s.withCategory(categoryID, next)
}

// AddScore returns s with delta added to the total score.
func AddScore(s State, delta int) State {
	return State{Answered: s.Answered, TotalScore: s.TotalScore + delta}
}

// ResetCategory clears one category's answered set. Other categories and the
// total score are unchanged.
func ResetCategory(s State, categoryID string) State {
	return s.withCategory(categoryID, Set{})
}

// ResetAll returns the zero state.
func ResetAll() State {
	return Zero()
}
