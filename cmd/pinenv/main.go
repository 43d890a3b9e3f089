// Package main is the entry point for pinenv.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/cmd/pinenv/commands"
	"go.trai.ch/pinenv/internal/app"
	"go.trai.ch/pinenv/internal/core/domain"
	_ "go.trai.ch/pinenv/internal/wiring"
	"golang.org/x/term"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*commands.CLI),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(commands.Adapt(components.App)).
		WithColor(term.IsTerminal(int(os.Stdout.Fd())))
	if lc, ok := components.Logger.(commands.LogConfigurer); ok {
		cli.WithLogConfig(lc)
	}
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	for _, opt := range opts {
		opt(cli)
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(components, err)
	}
	return 0
}

// exitCode reports err and returns the process exit status for it.
// A failing `run` child is not reported: it already printed its own output,
// and its status is forwarded as is.
func exitCode(components *app.Components, err error) int {
	code, hasCode := domain.ExitCode(err)
	if errors.Is(err, domain.ErrRunFailed) && hasCode {
		return code
	}

	components.Logger.Error(err)
	if hasCode && code > 0 {
		return code
	}
	return 1
}
