package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	After      int64     // sequence > After
	Before     int64     // sequence < Before
	From       time.Time // timestamp >= From
	CategoryID string    // exact match when non-empty
	Action     string    // round events only; exact match when non-empty
}

// KVRepo stores opaque string values under fixed keys.
type KVRepo interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Round event actions.
const (
	RoundActionStart = "start"
	RoundActionEnd   = "end"
)

// RoundEventData captures the data for a round start or end event.
type RoundEventData struct {
	RoundID    string
	CategoryID string
	Action     string // "start" or "end"
	Questions  int    // questions in the round
	Correct    int    // end only
	Score      int    // end only
}

// RoundEventRecord is a persisted round event.
type RoundEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// AnswerEventData captures a single scored submission.
type AnswerEventData struct {
	RoundID     string
	CategoryID  string
	QuestionID  int
	Difficulty  int
	OptionIndex int
	Correct     bool
	Points      int
}

// CategoryStats aggregates answer events for one category.
type CategoryStats struct {
	CategoryID string
	Answers    int
	Correct    int
	Points     int
}

// Accuracy returns Correct/Answers, or 0 when nothing was answered.
func (c CategoryStats) Accuracy() float64 {
	if c.Answers == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Answers)
}

// EventRepo provides append and query access to round history.
type EventRepo interface {
	// AppendRoundEvent records a round start or end.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendAnswerEvent records one scored submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryRoundEvents returns round events, newest first.
	QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error)

	// AnswerStatsByCategory aggregates all answer events per category.
	AnswerStatsByCategory(ctx context.Context) ([]CategoryStats, error)
}
