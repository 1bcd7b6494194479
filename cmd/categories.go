package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List quiz categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(resolveConfig(cmd).CatalogPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, cat.Title())
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-14s  %-28s  %9s  %4s  %6s  %4s  %6s\n",
			"ID", "Title", "Questions", "Easy", "Medium", "Hard", "Points")
		fmt.Fprintln(out, strings.Repeat("─", 83))

		for _, c := range cat.Categories() {
			counts := map[catalog.Difficulty]int{}
			points := 0
			for _, q := range c.Questions {
				counts[q.Difficulty]++
				points += q.Difficulty.Points()
			}
			fmt.Fprintf(out, "%s  %s  %9d  %4d  %6d  %4d  %6d\n",
				column(c.ID, 14), column(c.Title, 28), len(c.Questions),
				counts[catalog.DifficultyEasy], counts[catalog.DifficultyMedium], counts[catalog.DifficultyHard], points)
		}

		fmt.Fprintf(out, "\n%d categories, %d questions\n", len(cat.Categories()), cat.TotalQuestions())
		return nil
	},
}
