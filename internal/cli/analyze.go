package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/app"
	"github.com/heartmarshall/vocabulary-backend/internal/config"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const analyzeTimeout = 2 * time.Minute

func analyzeCmd() *cobra.Command {
	var (
		source, target, file string
		noLookup             bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Tokenize a text and resolve its lemmas against the dictionary",
		Long: "Reads text from --file (or stdin), prints the lemma frequency table and,\n" +
			"unless --no-lookup is given, the dictionary resolution of every lemma.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, tgt := domain.Language(source), domain.Language(target)
			if !src.IsValid() || !tgt.IsValid() {
				return fmt.Errorf("unknown language pair %s-%s", source, target)
			}

			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if noLookup {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return tokenizeOnly(cmd.Context(), cfg, out, text, src)
			}

			return withContainer(cmd, analyzeTimeout, func(ctx context.Context, c *app.Container) error {
				res, err := c.Pipeline.Analyze(ctx, text, src, tgt)
				if err != nil {
					return err
				}
				if err := writeFrequencies(out, res.Frequencies); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return writeReport(out, res.Report)
			})
		},
	}

	cmd.Flags().StringVar(&source, "lang", "fr", "source language of the text")
	cmd.Flags().StringVar(&target, "target", "fi", "target language of dictionary entries")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "text file to analyze, - for stdin")
	cmd.Flags().BoolVar(&noLookup, "no-lookup", false, "only tokenize and count; no database needed")
	return cmd
}

func tokenizeOnly(ctx context.Context, cfg *config.Config, out io.Writer, text string, lang domain.Language) error {
	registry, _, err := app.NewTokenizers(cfg.NLP, app.NewLogger(cfg.Log))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	tokens, err := registry.Tokenize(ctx, text, lang)
	if err != nil {
		return err
	}
	return writeFrequencies(out, analysis.Aggregate(tokens))
}

func readInput(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("read input: no text")
	}
	return text, nil
}

// writeFrequencies prints one row per lemma in first-seen order.
func writeFrequencies(w io.Writer, f analysis.Frequencies) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEMMA\tPOS\tCOUNT\tVARIANTS")
	for _, lemma := range f.Lemmas() {
		st, _ := f.Get(lemma)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", lemma, st.POS, st.Count, strings.Join(st.Orig, ", "))
	}
	fmt.Fprintf(tw, "\n%d lemmas\n", f.Len())
	return tw.Flush()
}

func writeReport(w io.Writer, r analysis.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEMMA\tOUTCOME\tVIA\tMATCHES")
	for _, res := range r.Results {
		var matches string
		switch {
		case res.Err != nil:
			matches = "error: " + res.Err.Error()
		default:
			parts := make([]string, len(res.Words))
			for i, wd := range res.Words {
				parts[i] = wd.Lemma + " (" + wd.POS.String() + ") = " + wd.Translation
			}
			matches = strings.Join(parts, "; ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", res.Lemma, res.Outcome, res.Via, matches)
	}
	fmt.Fprintf(tw, "\nmatched %d, fallback %d, missed %d, failed %d\n",
		r.Count(analysis.OutcomeMatched),
		r.Count(analysis.OutcomeFallback),
		r.Count(analysis.OutcomeMissed),
		r.Count(analysis.OutcomeFailed),
	)
	return tw.Flush()
}
