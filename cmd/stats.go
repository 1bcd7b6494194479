package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show score, progress per category and recent rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		since, _ := cmd.Flags().GetDuration("since")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		p := e.progress.Load(ctx)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Total score: %d\n", p.TotalScore)
		fmt.Fprintf(out, "Answered:    %d/%d\n\n", p.AnsweredCount(), e.catalog.TotalQuestions())

		accuracy := map[string]store.CategoryStats{}
		if e.store != nil {
			stats, err := e.store.EventRepo().AnswerStatsByCategory(ctx)
			if err != nil {
				return fmt.Errorf("answer stats: %w", err)
			}
			for _, s := range stats {
				accuracy[s.CategoryID] = s
			}
		}

		fmt.Fprintf(out, "%-14s  %-28s  %8s  %8s  %8s\n", "ID", "Title", "Answered", "Accuracy", "Points")
		fmt.Fprintln(out, strings.Repeat("─", 74))
		for _, c := range e.catalog.Categories() {
			acc := "-"
			points := 0
			if s, ok := accuracy[c.ID]; ok && s.Answers > 0 {
				acc = fmt.Sprintf("%.0f%%", s.Accuracy()*100)
				points = s.Points
			}
			fmt.Fprintf(out, "%s  %s  %8s  %8s  %8d\n",
				column(c.ID, 14), column(c.Title, 28),
				fmt.Sprintf("%d/%d", p.AnsweredIn(c.ID).Len(), len(c.Questions)),
				acc, points)
		}

		if e.store == nil || limit <= 0 {
			return nil
		}

		opts := store.QueryOpts{Limit: limit, Action: store.RoundActionEnd}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		rounds, err := e.store.EventRepo().QueryRoundEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}

		fmt.Fprintln(out)
		if len(rounds) == 0 {
			fmt.Fprintln(out, "No finished rounds yet.")
			return nil
		}
		fmt.Fprintln(out, "Recent rounds")
		fmt.Fprintf(out, "%-16s  %-14s  %7s  %5s\n", "Finished", "Category", "Correct", "Score")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, r := range rounds {
			fmt.Fprintf(out, "%-16s  %s  %7s  %5d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				column(r.CategoryID, 14),
				fmt.Sprintf("%d/%d", r.Correct, r.Questions),
				r.Score)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent rounds to show (0 hides them)")
	statsCmd.Flags().Duration("since", 0, "Only show rounds finished within this duration, e.g. 24h (0 shows all)")
}
