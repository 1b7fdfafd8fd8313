package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cruise/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// answers shell completion requests and exits, if any.
	cmd.Completion().Complete(name)

	flag.Parse()
	cmd.SetupLogging()

	// without subcommand, cruise is the interactive menu.
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunMenu()))
	}
	// unknown subcommands may be provided by a cruise-<subcommand> executable.
	if sub := flag.Arg(0); !cmd.Registered(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
