package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"Warren/internal/report"
)

// reportCmd implements the "report" command.
type reportCmd struct {
	offline bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "checks a symbol's 3-month range and says whether to buy" }
func (*reportCmd) Usage() string {
	return `report [-offline] SYMBOL:

	Fetches daily quotes for the last three months, locates the latest close
	within the period's low-high range and prints a one-line recommendation.

	"warren SYMBOL" is a shorthand for "warren report SYMBOL"; with the
	shorthand, flags may also follow the symbol ("warren AAPL -offline").
`
}
func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "use a generated demo series instead of Yahoo Finance")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 1 {
		fmt.Fprintf(a.Stderr, "Error: expected exactly one SYMBOL argument\n")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	cfg, log, err := a.setup(false)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	src, err := fetcher(cfg, c.offline)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := report.NewBuilder(src, log).Build(ctx, symbol)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(a.Stdout, r)
	return subcommands.ExitSuccess
}
