package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cruise"
	"github.com/etnz/cruise/renderer"
	"github.com/google/subcommands"
)

type profitCmd struct{}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display the profit of each ship and the profit statistics" }
func (*profitCmd) Usage() string {
	return `cruise profit

  Computes the profit of each ship, then displays the average, maximum and minimum profit.
`
}

func (*profitCmd) SetFlags(f *flag.FlagSet) {}

func (*profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := cruise.Load()
	s, err := ledger.ComputeProfit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing profit: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfitMarkdown(ledger, s))
	return subcommands.ExitSuccess
}
