package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateCategories performs structural checks the schema cannot express.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "catalog has no categories")
	}

	catIDs := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			errs = append(errs, "category with empty ID")
		}
		if catIDs[cat.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", cat.ID))
		}
		catIDs[cat.ID] = true

		qIDs := make(map[int]bool, len(cat.Questions))
		for _, q := range cat.Questions {
			if qIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("category %q: duplicate question ID %d", cat.ID, q.ID))
			}
			qIDs[q.ID] = true

			if !q.Difficulty.Valid() {
				errs = append(errs, fmt.Sprintf("category %q: question %d has difficulty %d (want 1-3)", cat.ID, q.ID, q.Difficulty))
			}
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("category %q: question %d needs at least 2 options", cat.ID, q.ID))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("category %q: question %d correct index %d out of range", cat.ID, q.ID, q.CorrectIndex))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
