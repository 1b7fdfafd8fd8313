package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cruise"
	"github.com/etnz/cruise/renderer"
	"github.com/google/subcommands"
)

type columnsCmd struct{}

func (*columnsCmd) Name() string     { return "columns" }
func (*columnsCmd) Synopsis() string { return "list the columns of the ship table" }
func (*columnsCmd) Usage() string {
	return `cruise columns

  Lists the columns that can be filtered on, with their type.
`
}

func (*columnsCmd) SetFlags(f *flag.FlagSet) {}

func (*columnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.ColumnsMarkdown(append(cruise.Schema(), cruise.ProfitColumn)))
	return subcommands.ExitSuccess
}
