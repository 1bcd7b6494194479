package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/infoquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "infoquiz",
	Short: "Informatics quiz for grades 5-6",
	Long:  "InfoQuiz is a terminal quiz game: pick a topic, answer questions from easy to hard and collect points.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides INFOQUIZ_DB env var)")
	flags.String("catalog", "", "Path to a question catalog JSON file (overrides INFOQUIZ_CATALOG env var)")
	flags.String("log", "", `Path to the log file, "-" for stderr (overrides INFOQUIZ_LOG env var)`)
	flags.Bool("ephemeral", false, "Keep progress in memory only")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment and applies flag overrides.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := flags.GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := flags.GetString("log"); p != "" {
		cfg.LogPath = p
	}
	if flags.Changed("ephemeral") {
		cfg.Ephemeral, _ = flags.GetBool("ephemeral")
	}
	return cfg
}
