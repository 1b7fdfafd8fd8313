// Package cmd implements the CLI application to explore the cruise ship economy.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables the logs.
var Verbose = flag.Bool("v", false, "Verbose logging on stderr")

// commands lists the subcommands and their group, in the help order.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"ships", &menuCmd{}},
	{"ships", &viewCmd{}},
	{"ships", &filterCmd{}},
	{"ships", &profitCmd{}},
	{"ships", &queryCmd{}},
	{"ships", &columnsCmd{}},
	{"documentation", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// SetupLogging must be called once flags are parsed, logs are discarded unless -v is set.
func SetupLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// renderMarkdown renders markdown for the terminal. The raw markdown is
// returned if it cannot be rendered.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("markdown-renderer error=%q", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("markdown-render error=%q", err)
		return md
	}
	return out
}

// printMarkdown prints markdown on stdout, rendered for the terminal.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
