package cruise

import (
	"errors"
	"fmt"
	"log"
)

// ErrEmptyTable is returned when statistics are requested on a ledger without ships.
var ErrEmptyTable = errors.New("no ships in the table")

// Ledger is the ordered table of ships. Insertion order is preserved and
// ships are never added or removed once the ledger is built.
type Ledger struct {
	ships     []*Ship
	index     map[string]*Ship
	hasProfit bool
}

// ProfitSummary holds the profit statistics over all the ships of a ledger.
type ProfitSummary struct {
	Average Money
	Maximum Money
	Minimum Money
}

// NewLedger creates a ledger from valid ships with unique names.
// An empty ledger is valid.
func NewLedger(ships ...*Ship) (*Ledger, error) {
	l := &Ledger{
		ships: make([]*Ship, 0, len(ships)),
		index: make(map[string]*Ship, len(ships)),
	}
	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := l.index[s.name]; exists {
			return nil, fmt.Errorf("ship %q is already defined", s.name)
		}
		l.ships = append(l.ships, s)
		l.index[s.name] = s
	}
	return l, nil
}

// Load returns the cruise ship economy dataset.
func Load() *Ledger {
	l, err := NewLedger(
		NewShip("Ocean Voyager", 2000, USD(3_000_000), USD(500_000), USD(2_500_000)),
		NewShip("Sea Explorer", 1800, USD(2_500_000), USD(400_000), USD(2_300_000)),
		NewShip("Wave Rider", 2200, USD(3_500_000), USD(600_000), USD(2_800_000)),
		NewShip("Sunset Dream", 2500, USD(4_000_000), USD(700_000), USD(3_000_000)),
		NewShip("Star Cruiser", 2100, USD(3_200_000), USD(650_000), USD(2_700_000)),
	)
	if err != nil {
		panic(err)
	}
	log.Printf("load-ledger ships=%d", l.Len())
	return l
}

// Ships returns the ships in insertion order.
func (l *Ledger) Ships() []*Ship { return l.ships }

// Len returns the number of ships.
func (l *Ledger) Len() int { return len(l.ships) }

// Ship returns the ship named 'name' or nil.
func (l *Ledger) Ship(name string) *Ship { return l.index[name] }

// HasProfit reports whether the profit has been computed.
func (l *Ledger) HasProfit() bool { return l.hasProfit }

// Columns returns the columns currently available, the Profit column is
// only available after ComputeProfit.
func (l *Ledger) Columns() []Column {
	columns := Schema()
	if l.hasProfit {
		columns = append(columns, ProfitColumn)
	}
	return columns
}

// Column returns the column named 'name', or an *UnknownColumnError.
func (l *Ledger) Column(name string) (Column, error) {
	return lookupColumn(l.Columns(), name)
}

// Filter returns the ships whose 'column' field equals 'v', in ledger order.
//
// Numeric columns are compared numerically. A text value is first converted
// to the column's kind. An empty result is not an error.
func (l *Ledger) Filter(column string, v Value) ([]*Ship, error) {
	c, err := l.Column(column)
	if err != nil {
		return nil, err
	}
	v, err = c.coerce(v)
	if err != nil {
		return nil, err
	}
	matches := make([]*Ship, 0)
	for _, s := range l.ships {
		if c.match(s, v) {
			matches = append(matches, s)
		}
	}
	log.Printf("filter column=%q value=%q matches=%d", c.Name, v, len(matches))
	return matches, nil
}

// FilterText converts 'raw' to the native type of 'column' and filters on it.
// It returns the resolved column and value along with the matching ships.
func (l *Ledger) FilterText(column, raw string) (Column, Value, []*Ship, error) {
	c, err := l.Column(column)
	if err != nil {
		return Column{}, Value{}, nil, err
	}
	v, err := c.Parse(raw)
	if err != nil {
		return c, Value{}, nil, err
	}
	ships, err := l.Filter(c.Name, v)
	return c, v, ships, err
}

// ComputeProfit computes the profit of every ship and returns the profit statistics.
//
// Profits are recomputed from the revenues and cost at each call so calling
// it again yields the same result. It returns ErrEmptyTable if there are no ships.
func (l *Ledger) ComputeProfit() (ProfitSummary, error) {
	if len(l.ships) == 0 {
		return ProfitSummary{}, ErrEmptyTable
	}
	var s ProfitSummary
	var total Money
	for i, ship := range l.ships {
		p := ship.computeProfit()
		total = total.Add(p)
		if i == 0 || p.GreaterThan(s.Maximum) {
			s.Maximum = p
		}
		if i == 0 || p.LessThan(s.Minimum) {
			s.Minimum = p
		}
	}
	s.Average = total.DivInt(len(l.ships))
	l.hasProfit = true
	log.Printf("compute-profit ships=%d average=%q max=%q min=%q", len(l.ships), s.Average, s.Maximum, s.Minimum)
	return s, nil
}
