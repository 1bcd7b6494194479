package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Tolerant(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want State
	}{
		{"empty", ``, Zero()},
		{"not json", `"not json"`, Zero()},
		{"bare text", `not json`, Zero()},
		{"null", `null`, Zero()},
		{"array root", `[1,2,3]`, Zero()},
		{"empty object", `{}`, Zero()},
		{"only score", `{"totalScore": 70}`, State{Answered: map[string]Set{}, TotalScore: 70}},
		{"score wrong type", `{"totalScore": "lots"}`, Zero()},
		{"negative score", `{"totalScore": -5}`, Zero()},
		{
			name: "answered wrong type",
			blob: `{"answeredByCategory": 7, "totalScore": 10}`,
			want: State{Answered: map[string]Set{}, TotalScore: 10},
		},
		{
			name: "one bad category kept others",
			blob: `{"answeredByCategory": {"a": [1, 2], "b": "oops"}}`,
			want: State{Answered: map[string]Set{"a": NewSet(1, 2)}},
		},
		{
			name: "null ids skipped",
			blob: `{"answeredByCategory": {"a": [1, null]}}`,
			want: State{Answered: map[string]Set{"a": NewSet(1)}},
		},
		{
			name: "duplicates collapse",
			blob: `{"answeredByCategory": {"a": [2, 2, 1]}, "totalScore": 30}`,
			want: State{Answered: map[string]Set{"a": NewSet(1, 2)}, TotalScore: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.blob)))
		})
	}
}

func TestDecode_ReportsDiscardedData(t *testing.T) {
	_, clean := decode([]byte(`{"answeredByCategory": {"a": [1, 2]}, "totalScore": 30}`))
	assert.True(t, clean)

	s, clean := decode([]byte(`{"answeredByCategory": {"a": [1, null]}}`))
	assert.False(t, clean)
	assert.Equal(t, NewSet(1), s.Answered["a"])
}

func TestEncode_SortedIDs(t *testing.T) {
	s := State{Answered: map[string]Set{"a": NewSet(3, 1, 2)}, TotalScore: 60}
	data, err := Encode(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answeredByCategory":{"a":[1,2,3]},"totalScore":60}`, string(data))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	s := Zero()
	s = RecordAnswer(s, "computer", 3)
	s = RecordAnswer(s, "computer", 1)
	s = RecordAnswer(s, "binary", 30)
	s = ResetCategory(s, "internet")
	s = AddScore(s, 120)

	data, err := Encode(s)
	require.NoError(t, err)
	assert.Equal(t, s, Decode(data))
}

func TestStore_LoadAbsent(t *testing.T) {
	st := NewStore(NewMemoryKV(), nil)
	assert.Equal(t, Zero(), st.Load(context.Background()))
}

func TestStore_LoadNotJSON(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), Key, "not json"))

	st := NewStore(kv, nil)
	assert.Equal(t, Zero(), st.Load(context.Background()))
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	st := NewStore(NewMemoryKV(), nil)

	s := RecordAnswer(Zero(), "algorithms", 13)
	s = AddScore(s, 30)
	require.NoError(t, st.Save(ctx, s))
	assert.Equal(t, s, st.Load(ctx))

	require.NoError(t, st.Save(ctx, ResetAll()))
	assert.Equal(t, Zero(), st.Load(ctx))
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error         { return f.err }

func TestStore_BackendErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	st := NewStore(failingKV{err: boom}, nil)

	assert.Equal(t, Zero(), st.Load(context.Background()))

	err := st.Save(context.Background(), Zero())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
