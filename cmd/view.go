package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cruise"
	"github.com/etnz/cruise/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	json bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the ship table" }
func (*viewCmd) Usage() string {
	return `cruise view [-json]

  Displays every ship of the table.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the table as JSON instead of a table.")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := cruise.Load()
	if !c.json {
		printMarkdown(renderer.DataMarkdown(ledger))
		return subcommands.ExitSuccess
	}
	return printJSON(ledger.Ships())
}

// printJSON prints 'v' as indented JSON on stdout.
func printJSON(v any) subcommands.ExitStatus {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}
