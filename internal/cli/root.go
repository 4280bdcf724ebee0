// Package cli implements the vocab command line: the HTTP server plus the
// maintenance and batch commands that share its configuration.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabulary-backend/internal/app"
	"github.com/heartmarshall/vocabulary-backend/internal/config"
)

// NewRootCommand builds the vocab command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocab",
		Short:         "Vocabulary chapter analysis backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "",
		"YAML config file (default $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		analyzeCmd(),
		importWordsCmd(),
		importChapterCmd(),
		cleanupTokensCmd(),
	)
	return root
}

// loadConfig honours --config and falls back to CONFIG_PATH.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// withContainer loads configuration, connects to the database and runs fn
// with a context bounded by timeout.
func withContainer(cmd *cobra.Command, timeout time.Duration, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(ctx, c)
}
