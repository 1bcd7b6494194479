package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/app"
	"github.com/abhisek/infoquiz/internal/router"
)

// runApp opens the environment and launches the TUI, optionally starting
// a round in categoryID.
func runApp(cmd *cobra.Command, categoryID string) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	r := e.newRouter(ctx)
	if categoryID != "" {
		if err := r.SelectCategory(ctx, categoryID); err != nil {
			if errors.Is(err, router.ErrUnknownCategory) {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(categoryIDs(e), ", "))
			}
			return err
		}
	}

	e.logger.Info("starting tui", "catalog", e.catalog.Title(), "ephemeral", e.cfg.Ephemeral)
	return app.Run(ctx, r, e.logger)
}

func categoryIDs(e *env) []string {
	cats := e.catalog.Categories()
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
