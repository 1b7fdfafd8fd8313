package cmd

import (
	"flag"

	"github.com/etnz/cruise"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predicter is implemented by subcommands that complete more than their flag names.
type predicter interface {
	predict(c *complete.Command)
}

// Completion returns the shell completion of the cruise command, built from
// the global flags and the registered subcommands.
//
// Calling Complete on it answers the shell completion requests, and is a no-op otherwise.
func Completion() *complete.Command {
	root := &complete.Command{
		Flags: flagPredictors(flag.CommandLine),
		Sub:   make(map[string]*complete.Command, len(commands)),
	}
	for _, e := range commands {
		fs := flag.NewFlagSet(e.cmd.Name(), flag.ContinueOnError)
		e.cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if p, ok := e.cmd.(predicter); ok {
			p.predict(sub)
		}
		root.Sub[e.cmd.Name()] = sub
	}
	return root
}

// flagPredictors predicts nothing for boolean flags and anything for the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// columnPredictor predicts the column names.
func columnPredictor() complete.Predictor {
	var names predict.Set
	for _, c := range append(cruise.Schema(), cruise.ProfitColumn) {
		names = append(names, c.Name)
	}
	return names
}
