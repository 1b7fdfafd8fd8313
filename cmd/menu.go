package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cruise"
	"github.com/etnz/cruise/renderer"
	"github.com/google/subcommands"
)

// menu choices.
const (
	choiceView = iota + 1
	choiceFilter
	choiceProfit
	choiceExit
)

// InvalidChoiceError is returned for a menu input that is not one of the menu choices.
type InvalidChoiceError struct {
	Input string
	Err   error // set when the input is not an integer.
}

func (e *InvalidChoiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%q is not a valid integer, please enter a number between %d and %d", e.Input, choiceView, choiceExit)
	}
	return fmt.Sprintf("%s is not a valid option, please enter a number between %d and %d", e.Input, choiceView, choiceExit)
}

func (e *InvalidChoiceError) Unwrap() error { return e.Err }

// parseChoice converts a menu input into one of the menu choices.
func parseChoice(input string) (int, error) {
	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, &InvalidChoiceError{Input: input, Err: err}
	}
	if choice < choiceView || choice > choiceExit {
		return 0, &InvalidChoiceError{Input: input}
	}
	return choice, nil
}

// Menu is the interactive loop: it prints the menu, reads a choice and runs
// the matching ledger operation, until Exit is chosen or the input ends.
type Menu struct {
	Ledger *cruise.Ledger
	// Render turns the markdown reports into text for the output.
	Render func(markdown string) string

	in  *bufio.Reader
	out io.Writer
	err error // read error that ended the loop, if any.
}

// NewMenu creates a menu reading choices from 'in' and printing to 'out'.
// Reports are printed as raw markdown unless Render is changed.
func NewMenu(l *cruise.Ledger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Ledger: l,
		Render: func(md string) string { return md },
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run runs the loop. It returns nil when Exit is chosen or the input is
// exhausted, and the read error otherwise. User errors never stop the loop.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "Welcome to the Cruise Ship Economy Data Analysis Program!")
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Menu Options:")
		fmt.Fprintln(m.out, "1 - View Data")
		fmt.Fprintln(m.out, "2 - Filter Data by Column")
		fmt.Fprintln(m.out, "3 - Calculate Profit and Statistics")
		fmt.Fprintln(m.out, "4 - Exit")

		input, ok := m.prompt("Enter your choice (1-4): ")
		if !ok {
			fmt.Fprintln(m.out)
			return m.err
		}
		exit := m.dispatch(input)
		fmt.Fprintln(m.out, "End of current operation.")
		if exit {
			return nil
		}
	}
}

// prompt prints 'msg' and reads one line, whatever its length. It returns
// false when there is nothing left to read.
func (m *Menu) prompt(msg string) (string, bool) {
	fmt.Fprint(m.out, msg)
	line, err := m.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err != io.EOF {
			m.err = err
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// dispatch runs the operation for 'input', and returns true if the loop must end.
func (m *Menu) dispatch(input string) bool {
	choice, err := parseChoice(input)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return false
	}
	log.Printf("menu-choice choice=%d", choice)

	switch choice {
	case choiceView:
		fmt.Fprintln(m.out, m.Render(renderer.DataMarkdown(m.Ledger)))
	case choiceFilter:
		m.filter()
	case choiceProfit:
		m.profit()
	case choiceExit:
		fmt.Fprintln(m.out, "Exiting program. Goodbye!")
		return true
	}
	return false
}

func (m *Menu) filter() {
	column, ok := m.prompt("Enter the column name to filter by (e.g., 'Ship Name', 'Passenger Capacity'): ")
	if !ok {
		return
	}
	raw, ok := m.prompt(fmt.Sprintf("Enter the value to filter by for column '%s': ", column))
	if !ok {
		return
	}

	c, v, ships, err := m.Ledger.FilterText(column, raw)
	var unknown *cruise.UnknownColumnError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintf(m.out, "Error: Column '%s' does not exist in the data.\n", unknown.Column)
	case err != nil:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	case len(ships) == 0:
		fmt.Fprintf(m.out, "No records found for %s = %s\n", c.Name, v)
	default:
		fmt.Fprintln(m.out, m.Render(renderer.FilterMarkdown(c, v, ships, m.Ledger.HasProfit())))
	}
}

func (m *Menu) profit() {
	s, err := m.Ledger.ComputeProfit()
	if err != nil {
		fmt.Fprintf(m.out, "Error: cannot compute profit statistics: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, m.Render(renderer.ProfitMarkdown(m.Ledger, s)))
}

// RunMenu runs the interactive menu on the standard input and output.
func RunMenu() subcommands.ExitStatus {
	m := NewMenu(cruise.Load(), os.Stdin, os.Stdout)
	m.Render = renderMarkdown
	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "explore the ship table interactively (default)" }
func (*menuCmd) Usage() string {
	return `cruise [menu]

  Starts the interactive menu to view, filter and compute the profit of the ships.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunMenu()
}
