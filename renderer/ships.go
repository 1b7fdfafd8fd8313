package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/cruise"
	md "github.com/nao1215/markdown"
)

// DataMarkdown renders every ship of the ledger. The Profit column is only
// rendered once it has been computed.
func DataMarkdown(l *cruise.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Data Preview")
	doc.Table(shipTable(l.Ships(), l.HasProfit()))
	return doc.String()
}

// FilterMarkdown renders the ships matching 'column' = 'v'.
func FilterMarkdown(column cruise.Column, v cruise.Value, ships []*cruise.Ship, withProfit bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2f("Filtered Data (where %s = %s)", column.Name, v)
	doc.Table(shipTable(ships, withProfit))
	return doc.String()
}

// ColumnsMarkdown renders the list of columns and their native types.
func ColumnsMarkdown(columns []cruise.Column) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(columns))
	for _, c := range columns {
		rows = append(rows, []string{c.Name, c.Key, c.Kind.String()})
	}
	doc.H2("Columns")
	doc.Table(md.TableSet{
		Header: []string{"Column", "Key", "Type"},
		Rows:   rows,
	})
	return doc.String()
}

// shipTable builds the table of ships, one row per ship in the given order.
func shipTable(ships []*cruise.Ship, withProfit bool) md.TableSet {
	columns := cruise.Schema()
	if withProfit {
		columns = append(columns, cruise.ProfitColumn)
	}

	t := md.TableSet{}
	for _, c := range columns {
		t.Header = append(t.Header, c.Name)
		if c.Kind == cruise.String {
			t.Alignment = append(t.Alignment, md.AlignLeft)
		} else {
			t.Alignment = append(t.Alignment, md.AlignRight)
		}
	}
	for _, s := range ships {
		row := []string{
			s.Name(),
			strconv.Itoa(s.Capacity()),
			s.TicketRevenue().String(),
			s.AdditionalRevenue().String(),
			s.OperatingCost().String(),
		}
		if withProfit {
			row = append(row, profit(s))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// profit formats the ship's profit, or "-" if it has not been computed.
func profit(s *cruise.Ship) string {
	p, ok := s.Profit()
	if !ok {
		return "-"
	}
	return p.String()
}
