package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO round_events
			(sequence, timestamp, round_id, category_id, action, questions, correct, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC().UnixMilli(), data.RoundID, data.CategoryID, data.Action,
		data.Questions, data.Correct, data.Score,
	)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, timestamp, round_id, category_id, question_id, difficulty, option_index, correct, points)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC().UnixMilli(), data.RoundID, data.CategoryID, data.QuestionID,
		data.Difficulty, data.OptionIndex, data.Correct, data.Points,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRoundEvents(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC().UnixMilli())
	}
	if opts.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, opts.CategoryID)
	}
	if opts.Action != "" {
		where = append(where, "action = ?")
		args = append(args, opts.Action)
	}

	query := `SELECT id, sequence, timestamp, round_id, category_id, action, questions, correct, score
		FROM round_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	defer rows.Close()

	var records []RoundEventRecord
	for rows.Next() {
		var (
			rec RoundEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.RoundID, &rec.CategoryID,
			&rec.Action, &rec.Questions, &rec.Correct, &rec.Score); err != nil {
			return nil, fmt.Errorf("scan round event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) AnswerStatsByCategory(ctx context.Context) ([]CategoryStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category_id, COUNT(*), COALESCE(SUM(correct), 0), COALESCE(SUM(points), 0)
		 FROM answer_events
		 GROUP BY category_id
		 ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStats
	for rows.Next() {
		var cs CategoryStats
		if err := rows.Scan(&cs.CategoryID, &cs.Answers, &cs.Correct, &cs.Points); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer stats: %w", err)
	}
	return stats, nil
}
