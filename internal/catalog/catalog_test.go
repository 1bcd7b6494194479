package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Len(t, c.Categories(), 4)
	assert.Equal(t, 36, c.TotalQuestions())
	assert.NotEmpty(t, c.Title())

	for _, cat := range c.Categories() {
		got, ok := c.Category(cat.ID)
		require.True(t, ok, "lookup %q", cat.ID)
		assert.Equal(t, cat.Title, got.Title)
	}
}

func TestBuiltinQuestionIDsGloballyUnique(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	seen := make(map[int]string)
	for _, cat := range c.Categories() {
		for _, q := range cat.Questions {
			if prev, dup := seen[q.ID]; dup {
				t.Errorf("question %d appears in %q and %q", q.ID, prev, cat.ID)
			}
			seen[q.ID] = cat.ID
		}
	}
}

func TestCategoryUnknown(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	_, ok := c.Category("no-such-category")
	assert.False(t, ok)
}

func TestDifficultyPoints(t *testing.T) {
	assert.Equal(t, 10, DifficultyEasy.Points())
	assert.Equal(t, 20, DifficultyMedium.Points())
	assert.Equal(t, 30, DifficultyHard.Points())
	assert.Equal(t, "Hard", DifficultyHard.DisplayName())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		is      error
	}{
		{
			name: "minimal valid",
			doc: `{"version":"v1.2.0","categories":[{"id":"a","title":"A","questions":[
				{"id":1,"difficulty":1,"question":"q?","options":["x","y"],"correctIndex":1}]}]}`,
		},
		{
			name:    "not json",
			doc:     `not json`,
			wantErr: true,
		},
		{
			name:    "missing categories",
			doc:     `{"version":"v1.0.0"}`,
			wantErr: true,
		},
		{
			name: "difficulty out of range",
			doc: `{"version":"v1.0.0","categories":[{"id":"a","title":"A","questions":[
				{"id":1,"difficulty":4,"question":"q?","options":["x","y"],"correctIndex":0}]}]}`,
			wantErr: true,
		},
		{
			name: "major version 2",
			doc: `{"version":"v2.0.0","categories":[{"id":"a","title":"A","questions":[]}]}`,
			wantErr: true,
			is:      ErrUnsupportedVersion,
		},
		{
			name: "not semver",
			doc: `{"version":"latest","categories":[{"id":"a","title":"A","questions":[]}]}`,
			wantErr: true,
			is:      ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestNew_StructuralProblems(t *testing.T) {
	cats := []Category{
		{ID: "a", Title: "A", Questions: []Question{
			{ID: 1, Difficulty: 1, Prompt: "q1", Options: []string{"x", "y"}, CorrectIndex: 2},
			{ID: 1, Difficulty: 2, Prompt: "q2", Options: []string{"x", "y"}, CorrectIndex: 0},
		}},
		{ID: "a", Title: "A again"},
	}

	_, err := New("bad", cats)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Problems, 3)
	assert.Contains(t, err.Error(), "out of range")
	assert.Contains(t, err.Error(), "duplicate question ID 1")
	assert.Contains(t, err.Error(), `duplicate category ID: "a"`)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	doc := `{"version":"v1.0.0","title":"Mini","categories":[{"id":"a","title":"A","questions":[
		{"id":7,"difficulty":3,"question":"q?","options":["x","y","z"],"correctIndex":2}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mini", c.Title())

	cat, ok := c.Category("a")
	require.True(t, ok)
	require.Len(t, cat.Questions, 1)
	assert.Equal(t, "z", cat.Questions[0].CorrectOption())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
