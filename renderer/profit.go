package renderer

import (
	"bytes"

	"github.com/etnz/cruise"
	md "github.com/nao1215/markdown"
)

// ProfitMarkdown renders the profit of each ship followed by the profit statistics.
func ProfitMarkdown(l *cruise.Ledger, s cruise.ProfitSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Profit Calculations for each Ship")
	table := md.TableSet{
		Header:    []string{"Ship Name", "Profit"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	}
	for _, ship := range l.Ships() {
		table.Rows = append(table.Rows, []string{ship.Name(), profit(ship)})
	}
	doc.Table(table)

	// one paragraph per statistic, so that each one stays on its own line once rendered.
	doc.H2("Profit Statistics")
	doc.PlainTextf("Average Profit: %s", s.Average)
	doc.PlainText("")
	doc.PlainTextf("Maximum Profit: %s", s.Maximum)
	doc.PlainText("")
	doc.PlainTextf("Minimum Profit: %s", s.Minimum)
	doc.PlainText("")
	return doc.String()
}
