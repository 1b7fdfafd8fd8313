package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cruise"
	"github.com/etnz/cruise/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

type filterCmd struct {
	column string
	profit bool
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "display the ships whose column equals a value" }
func (*filterCmd) Usage() string {
	return `cruise filter [-profit] -c <column> <value>

  Displays the ships whose <column> equals <value>. The value is converted to
  the column type first, see 'cruise topic columns'.

  The Profit column can only be filtered on with -profit.
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.column, "c", "", "Column to filter on, e.g. 'Passenger Capacity'.")
	f.BoolVar(&c.profit, "profit", false, "Compute the profit before filtering, and display it.")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.column == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a column (-c) and a value are required.")
		return subcommands.ExitUsageError
	}
	// ship names contain spaces.
	raw := strings.Join(f.Args(), " ")

	ledger := cruise.Load()
	column, v, ships, err := filterLedger(ledger, c.column, raw, c.profit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error filtering ships: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(ships) == 0 {
		fmt.Printf("No records found for %s = %s\n", column.Name, v)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.FilterMarkdown(column, v, ships, ledger.HasProfit()))
	return subcommands.ExitSuccess
}

// filterLedger filters 'l' on the text value 'raw', computing the profit first if asked.
func filterLedger(l *cruise.Ledger, column, raw string, profit bool) (cruise.Column, cruise.Value, []*cruise.Ship, error) {
	if profit {
		if _, err := l.ComputeProfit(); err != nil {
			return cruise.Column{}, cruise.Value{}, nil, fmt.Errorf("cannot compute profit: %w", err)
		}
	}
	return l.FilterText(column, raw)
}

func (*filterCmd) predict(c *complete.Command) {
	c.Flags["c"] = columnPredictor()
}
