package progress

import (
	"context"
	"fmt"
	"log/slog"
)

// KV is the durable key-value backend the progress blob is written to.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Store loads and saves progress through a KV backend.
type Store struct {
	kv     KV
	logger *slog.Logger
}

// NewStore creates a Store. A nil logger discards log output.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the persisted state, or the zero state when nothing usable is
// stored. Read errors and corrupt data are logged, never returned.
func (s *Store) Load(ctx context.Context) State {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.logger.Warn("progress load failed; starting fresh", "error", err)
		return Zero()
	}
	if !ok {
		return Zero()
	}

	state, clean := decode([]byte(raw))
	if !clean {
		s.logger.Warn("progress data malformed; unreadable parts ignored", "bytes", len(raw))
	}
	return state
}

// Save writes state synchronously.
func (s *Store) Save(ctx context.Context, state State) error {
	data, err := Encode(state)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
