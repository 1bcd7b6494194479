package progress

import (
	"encoding/json"
)

// Key is the storage key the progress blob lives under.
const Key = "info-quiz-state"

// record is the persisted layout. Answered sets are stored as id lists.
type record struct {
	AnsweredByCategory map[string][]int `json:"answeredByCategory"`
	TotalScore         int              `json:"totalScore"`
}

// Encode serializes s. IDs are written in ascending order so the output is
// deterministic.
func Encode(s State) ([]byte, error) {
	rec := record{
		AnsweredByCategory: make(map[string][]int, len(s.Answered)),
		TotalScore:         s.TotalScore,
	}
	for cat, set := range s.Answered {
		rec.AnsweredByCategory[cat] = set.IDs()
	}
	return json.Marshal(rec)
}

// Decode parses a persisted blob. It never fails: absent, malformed or
// partially valid data falls back to empty/zero for whatever could not be read.
func Decode(data []byte) State {
	s, _ := decode(data)
	return s
}

// decode is Decode that also reports whether anything had to be discarded.
func decode(data []byte) (State, bool) {
	state := Zero()
	if len(data) == 0 {
		return state, true
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return state, false
	}

	clean := true

	if v, ok := raw["totalScore"]; ok {
		var score int
		if err := json.Unmarshal(v, &score); err != nil {
			clean = false
		} else if score > 0 {
			state.TotalScore = score
		}
	}

	if v, ok := raw["answeredByCategory"]; ok {
		var cats map[string]json.RawMessage
		if err := json.Unmarshal(v, &cats); err != nil {
			return state, false
		}
		for cat, idsRaw := range cats {
			var vals []*int
			if err := json.Unmarshal(idsRaw, &vals); err != nil {
				clean = false
				continue
			}
			ids := make([]int, 0, len(vals))
			for _, id := range vals {
				if id == nil {
					clean = false
					continue
				}
				ids = append(ids, *id)
			}
			state.Answered[cat] = NewSet(ids...)
		}
	}

	return state, clean
}
