package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cruise"
	"github.com/google/subcommands"
)

type queryCmd struct {
	profit bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the ship table" }
func (*queryCmd) Usage() string {
	return `cruise query [-profit] <expression>

  Prints the result of a JSONPath expression evaluated over the ships, as JSON.
  See 'cruise topic query'.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.profit, "profit", false, "Compute the profit before evaluating the expression.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one expression is required.")
		return subcommands.ExitUsageError
	}

	ledger := cruise.Load()
	if c.profit {
		if _, err := ledger.ComputeProfit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error computing profit: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	result, err := ledger.Query(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying ships: %v\n", err)
		return subcommands.ExitFailure
	}
	return printJSON(result)
}
