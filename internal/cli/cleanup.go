package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabulary-backend/internal/app"
)

func cleanupTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Long:  "Intended for an external cron job when the server's own cleanup is disabled.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, 30*time.Second, func(ctx context.Context, c *app.Container) error {
				n, err := c.Auth.CleanupExpiredTokens(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d refresh tokens\n", n)
				return nil
			})
		},
	}
}
