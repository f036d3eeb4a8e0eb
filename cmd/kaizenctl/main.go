// Command kaizenctl is the operator command line for the idea review
// workflow.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/kaizen-backend/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.RuntimeOpener(os.Stderr))
	if err := root.ExecuteContext(ctx); err != nil {
		format, _ := root.PersistentFlags().GetString("format")
		cli.WriteError(os.Stderr, format, err)
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}
