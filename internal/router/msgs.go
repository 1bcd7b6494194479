package router

import "context"

// Action messages emitted by screens and applied by the root model.
type (
	SelectCategoryMsg struct{ CategoryID string }
	AnswerMsg         struct{ Option int }
	NextMsg           struct{}
	RetryMsg          struct{}
	BackMsg           struct{}
	ResetAllMsg       struct{}
)

// Dispatch applies an action message. It reports whether msg was an action.
func (r *Router) Dispatch(ctx context.Context, msg any) (bool, error) {
	switch msg := msg.(type) {
	case SelectCategoryMsg:
		return true, r.SelectCategory(ctx, msg.CategoryID)
	case AnswerMsg:
		return true, r.Answer(ctx, msg.Option)
	case NextMsg:
		return true, r.Next(ctx)
	case RetryMsg:
		return true, r.Retry(ctx)
	case BackMsg:
		r.Back()
		return true, nil
	case ResetAllMsg:
		return true, r.ResetAll(ctx)
	}
	return false, nil
}
