package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabulary-backend/internal/app"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/chapter"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

const importTimeout = 30 * time.Minute

func importWordsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-words",
		Short: "Bulk load dictionary entries from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer f.Close()

			return withContainer(cmd, importTimeout, func(ctx context.Context, c *app.Container) error {
				res, err := c.Words.Import(ctx, f)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "inserted %d, skipped %d, rejected %d\n", res.Inserted, res.Skipped, len(res.Errors))
				for _, e := range res.Errors {
					fmt.Fprintf(out, "  line %d: %s\n", e.Line, e.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with a header row")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func importChapterCmd() *cobra.Command {
	var (
		rawURL, owner, source, target string
		public                        bool
	)

	cmd := &cobra.Command{
		Use:   "import-chapter",
		Short: "Fetch a web article and save it as an analysed chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(owner)
			if err != nil {
				return fmt.Errorf("--user must be a user id: %w", err)
			}

			return withContainer(cmd, importTimeout, func(ctx context.Context, c *app.Container) error {
				// The chapter is created on behalf of the given user.
				if _, err := c.Repos.Users.GetByID(ctx, userID); err != nil {
					return fmt.Errorf("user %s: %w", userID, err)
				}
				ctx = ctxutil.WithUserID(ctx, userID)

				res, err := c.Chapters.Import(ctx, chapter.ImportInput{
					URL:        rawURL,
					Public:     public,
					SourceLang: domain.Language(source),
					TargetLang: domain.Language(target),
				})
				if err != nil {
					return err
				}

				s := res.Summary
				fmt.Fprintf(cmd.OutOrStdout(), "chapter %s %q: %d words (lemmas %d, matched %d, fallback %d, missed %d, failed %d, skipped %d)\n",
					res.Detail.ID, res.Detail.Title, len(res.Detail.Properties),
					s.Lemmas, s.Matched, s.Fallback, s.Missed, s.Failed, s.Skipped)
				if !s.Tokenized {
					fmt.Fprintln(cmd.OutOrStdout(), "text was not analysed; see the log for the tokenizer error")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "article URL")
	cmd.Flags().StringVar(&owner, "user", "", "id of the owning user")
	cmd.Flags().StringVar(&source, "lang", "fr", "source language")
	cmd.Flags().StringVar(&target, "target", "fi", "target language")
	cmd.Flags().BoolVar(&public, "public", false, "make the chapter public")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
