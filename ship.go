package cruise

// Ship is one row of the ledger: the economics of a single cruise ship.
//
// Only the profit changes during a session, it is derived from the other
// fields by [Ledger.ComputeProfit].
type Ship struct {
	name              string
	capacity          int
	ticketRevenue     Money
	additionalRevenue Money
	operatingCost     Money

	profit    Money
	hasProfit bool
}

// NewShip creates a ship record. The profit is not computed yet.
func NewShip(name string, capacity int, ticketRevenue, additionalRevenue, operatingCost Money) *Ship {
	return &Ship{
		name:              name,
		capacity:          capacity,
		ticketRevenue:     ticketRevenue,
		additionalRevenue: additionalRevenue,
		operatingCost:     operatingCost,
	}
}

func (s *Ship) Name() string             { return s.name }
func (s *Ship) Capacity() int            { return s.capacity }
func (s *Ship) TicketRevenue() Money     { return s.ticketRevenue }
func (s *Ship) AdditionalRevenue() Money { return s.additionalRevenue }
func (s *Ship) OperatingCost() Money     { return s.operatingCost }

// Profit returns the last computed profit, and false if it has never been computed.
func (s *Ship) Profit() (Money, bool) { return s.profit, s.hasProfit }

// computeProfit (re)computes the profit from the revenues and the cost, and stores it.
func (s *Ship) computeProfit() Money {
	s.profit = s.ticketRevenue.Add(s.additionalRevenue).Sub(s.operatingCost)
	s.hasProfit = true
	return s.profit
}

// MarshalJSON implements the json.Marshaler interface, fields are written in the column order.
func (s *Ship) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.name)
	w.Append("capacity", s.capacity)
	w.Append("ticketRevenue", s.ticketRevenue)
	w.Append("additionalRevenue", s.additionalRevenue)
	w.Append("operatingCost", s.operatingCost)
	if s.hasProfit {
		w.Append("profit", s.profit)
	}
	return w.MarshalJSON()
}
