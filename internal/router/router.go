package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/infoquiz/internal/catalog"
	"github.com/abhisek/infoquiz/internal/logging"
	"github.com/abhisek/infoquiz/internal/progress"
	"github.com/abhisek/infoquiz/internal/quiz"
	"github.com/abhisek/infoquiz/internal/store"
)

// ErrUnknownCategory is returned when selecting a category the catalog lacks.
var ErrUnknownCategory = errors.New("unknown category")

// Saver persists progress after every transition that changes it.
type Saver interface {
	Save(ctx context.Context, s progress.State) error
}

// EventRecorder receives round history. Optional.
type EventRecorder interface {
	AppendRoundEvent(ctx context.Context, data store.RoundEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Options configures a Router.
type Options struct {
	Catalog  *catalog.Catalog
	Progress progress.State
	Saver    Saver
	Recorder EventRecorder // nil disables round history
	Logger   *slog.Logger  // nil discards
}

// Router is the top-level screen state machine. It owns the in-memory
// progress state and writes it through Saver after each mutation.
type Router struct {
	catalog  *catalog.Catalog
	progress progress.State
	saver    Saver
	recorder EventRecorder
	logger   *slog.Logger

	state   State
	roundID string
}

// New creates a Router in the Home state.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	p := opts.Progress
	if p.Answered == nil {
		p = progress.Zero()
	}
	return &Router{
		catalog:  opts.Catalog,
		progress: p,
		saver:    opts.Saver,
		recorder: opts.Recorder,
		logger:   logger,
		state:    Home{},
	}
}

// State returns the active screen state.
func (r *Router) State() State {
	return r.state
}

// Progress returns the current progress state.
func (r *Router) Progress() progress.State {
	return r.progress
}

// Catalog returns the question catalog.
func (r *Router) Catalog() *catalog.Catalog {
	return r.catalog
}

// SelectCategory starts a round: Home -> Quiz. A category with nothing left
// to answer goes straight to Result with a zero score.
func (r *Router) SelectCategory(ctx context.Context, id string) error {
	if _, ok := r.state.(Home); !ok {
		return nil
	}
	return r.startRound(ctx, id)
}

// Answer submits an option for the current question. Accepted submissions
// are recorded in progress and persisted.
func (r *Router) Answer(ctx context.Context, option int) error {
	st, ok := r.state.(Quiz)
	if !ok {
		return nil
	}

	q, ok := st.Round.Current()
	if !ok || !st.Round.Submit(option) {
		return nil
	}

	r.record(ctx, func(rec EventRecorder) error {
		points := 0
		if st.Round.IsCorrect() {
			points = q.Difficulty.Points()
		}
		return rec.AppendAnswerEvent(ctx, store.AnswerEventData{
			RoundID:     r.roundID,
			CategoryID:  st.CategoryID,
			QuestionID:  q.ID,
			Difficulty:  int(q.Difficulty),
			OptionIndex: option,
			Correct:     st.Round.IsCorrect(),
			Points:      points,
		})
	})

	return r.commit(ctx, progress.RecordAnswer(r.progress, st.CategoryID, q.ID))
}

// Next advances past the answered question. After the last question the
// round score is added to the total and the router moves to Result.
func (r *Router) Next(ctx context.Context) error {
	st, ok := r.state.(Quiz)
	if !ok {
		return nil
	}
	res, done := st.Round.Advance()
	if !done {
		return nil
	}
	return r.completeRound(ctx, st.CategoryID, res)
}

// Retry clears the category's answers and starts a new round: Result -> Quiz.
func (r *Router) Retry(ctx context.Context) error {
	st, ok := r.state.(Result)
	if !ok {
		return nil
	}
	saveErr := r.commit(ctx, progress.ResetCategory(r.progress, st.CategoryID))
	r.state = Home{}
	return errors.Join(saveErr, r.startRound(ctx, st.CategoryID))
}

// Back discards the active round or result and returns Home. Progress
// already persisted per answer is kept.
func (r *Router) Back() {
	switch r.state.(type) {
	case Quiz, Result:
		r.state = Home{}
		r.roundID = ""
	}
}

// ResetAll wipes all progress. Only valid on Home.
func (r *Router) ResetAll(ctx context.Context) error {
	if _, ok := r.state.(Home); !ok {
		return nil
	}
	return r.commit(ctx, progress.ResetAll())
}

func (r *Router) startRound(ctx context.Context, id string) error {
	cat, ok := r.catalog.Category(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}

	round := quiz.Start(cat, r.progress.AnsweredIn(id))
	r.roundID = uuid.NewString()
	r.logger.Info("round started", "category", id, "round", r.roundID, "questions", round.Size())

	r.record(ctx, func(rec EventRecorder) error {
		return rec.AppendRoundEvent(ctx, store.RoundEventData{
			RoundID:    r.roundID,
			CategoryID: id,
			Action:     store.RoundActionStart,
			Questions:  round.Size(),
		})
	})

	if round.Done() {
		return r.completeRound(ctx, id, round.Result())
	}

	r.state = Quiz{CategoryID: id, Round: round}
	return nil
}

func (r *Router) completeRound(ctx context.Context, id string, res quiz.Complete) error {
	r.logger.Info("round complete", "category", id, "round", r.roundID,
		"score", res.Score, "total", res.Total, "correct", res.Correct)

	r.record(ctx, func(rec EventRecorder) error {
		return rec.AppendRoundEvent(ctx, store.RoundEventData{
			RoundID:    r.roundID,
			CategoryID: id,
			Action:     store.RoundActionEnd,
			Questions:  res.Total,
			Correct:    res.Correct,
			Score:      res.Score,
		})
	})

	r.state = Result{CategoryID: id, Score: res.Score, Total: res.Total, Correct: res.Correct}
	return r.commit(ctx, progress.AddScore(r.progress, res.Score))
}

// commit replaces the in-memory progress and persists it.
func (r *Router) commit(ctx context.Context, next progress.State) error {
	r.progress = next
	if r.saver == nil {
		return nil
	}
	if err := r.saver.Save(ctx, next); err != nil {
		r.logger.Error("persist progress", "error", err)
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

// record sends history to the recorder. Failures are logged and never
// interrupt play.
func (r *Router) record(ctx context.Context, fn func(EventRecorder) error) {
	if r.recorder == nil {
		return
	}
	if err := fn(r.recorder); err != nil {
		r.logger.Warn("record round history", "round", r.roundID, "error", err)
	}
}
