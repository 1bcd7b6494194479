package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset quiz progress (all, or one category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		categoryID, _ := cmd.Flags().GetString("category")
		yes, _ := cmd.Flags().GetBool("yes")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if categoryID != "" {
			if _, ok := e.catalog.Category(categoryID); !ok {
				return fmt.Errorf("unknown category %q (available: %s)",
					categoryID, strings.Join(categoryIDs(e), ", "))
			}
		}

		target := "all progress and the total score"
		if categoryID != "" {
			target = fmt.Sprintf("answered questions in %q", categoryID)
		}

		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprintf(out, "Reset %s? [y/N] ", target)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
			default:
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		next := progress.ResetAll()
		if categoryID != "" {
			next = progress.ResetCategory(e.progress.Load(ctx), categoryID)
		}
		if err := e.progress.Save(ctx, next); err != nil {
			return err
		}

		e.logger.Info("progress reset", "category", categoryID)
		fmt.Fprintf(out, "Reset %s.\n", target)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("category", "", "Only clear answered questions in this category")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
