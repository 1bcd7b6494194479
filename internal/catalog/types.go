package catalog

// Difficulty is a question tier. Higher tiers are worth more points.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Points returns the score awarded for a correct answer at this tier.
func (d Difficulty) Points() int {
	return int(d) * 10
}

// DisplayName returns a human-readable label for the tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// Question is a single multiple-choice question.
type Question struct {
	ID           int        `json:"id"`
	Difficulty   Difficulty `json:"difficulty"`
	Prompt       string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Category groups an ordered list of questions under one topic.
// Emoji and Color are cosmetic.
type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Color       string     `json:"color"`
	Questions   []Question `json:"questions"`
}

// Document is the on-disk catalog format.
type Document struct {
	Version    string     `json:"version"`
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
}
