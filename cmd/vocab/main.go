// Command vocab runs the vocabulary backend and its maintenance tasks.
//
// Usage:
//
//	vocab serve
//	vocab migrate up|down|status
//	vocab analyze --lang fr --file chapter.txt
//	vocab import-words --file words.csv
//	vocab import-chapter --url https://... --user <id>
//	vocab cleanup-tokens
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocabulary-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
