package cruise

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the native type of a column.
type Kind int

const (
	String Kind = iota
	Integer
	Decimal
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a typed value to compare a column against.
type Value struct {
	kind Kind
	text string
	num  decimal.Decimal
}

// StringValue creates a text value.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// IntValue creates an integer value.
func IntValue(i int) Value { return Value{kind: Integer, num: decimal.NewFromInt(int64(i))} }

// DecimalValue creates a decimal value.
func DecimalValue[T numeric](v T) Value { return Value{kind: Decimal, num: newDecimal(v)} }

// MoneyValue creates a decimal value from an amount, the currency is dropped.
func MoneyValue(m Money) Value { return Value{kind: Decimal, num: m.value} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) String() string {
	if v.kind == String {
		return v.text
	}
	return v.num.String()
}

// Column describes one column of the ship table.
type Column struct {
	Name string // Display name, e.g. "Passenger Capacity".
	Key  string // JSON key, e.g. "capacity".
	Kind Kind
	// field extracts the column value of a ship, false if the ship has no such value yet.
	field func(*Ship) (Value, bool)
}

func (c Column) String() string { return c.Name }

var (
	NameColumn = Column{Name: "Ship Name", Key: "name", Kind: String,
		field: func(s *Ship) (Value, bool) { return StringValue(s.name), true }}
	CapacityColumn = Column{Name: "Passenger Capacity", Key: "capacity", Kind: Integer,
		field: func(s *Ship) (Value, bool) { return IntValue(s.capacity), true }}
	TicketRevenueColumn = Column{Name: "Ticket Revenue", Key: "ticketRevenue", Kind: Decimal,
		field: func(s *Ship) (Value, bool) { return MoneyValue(s.ticketRevenue), true }}
	AdditionalRevenueColumn = Column{Name: "Additional Revenue", Key: "additionalRevenue", Kind: Decimal,
		field: func(s *Ship) (Value, bool) { return MoneyValue(s.additionalRevenue), true }}
	OperatingCostColumn = Column{Name: "Operating Cost", Key: "operatingCost", Kind: Decimal,
		field: func(s *Ship) (Value, bool) { return MoneyValue(s.operatingCost), true }}
	ProfitColumn = Column{Name: "Profit", Key: "profit", Kind: Decimal,
		field: func(s *Ship) (Value, bool) {
			p, ok := s.Profit()
			return MoneyValue(p), ok
		}}
)

// Schema returns the input columns of the ship table, in display order.
// The Profit column is not part of it, it only exists once computed.
func Schema() []Column {
	return []Column{NameColumn, CapacityColumn, TicketRevenueColumn, AdditionalRevenueColumn, OperatingCostColumn}
}

// lookupColumn finds a column by display name or key, ignoring case and surrounding blanks.
func lookupColumn(columns []Column, name string) (Column, error) {
	n := strings.TrimSpace(name)
	for _, c := range columns {
		if strings.EqualFold(c.Name, n) || strings.EqualFold(c.Key, n) {
			return c, nil
		}
	}
	return Column{}, &UnknownColumnError{Column: name}
}

// Parse converts a raw text into a value of the column's kind.
func (c Column) Parse(raw string) (Value, error) {
	switch c.Kind {
	case Integer:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, &TypeConversionError{Column: c.Name, Value: raw, Kind: c.Kind, Err: err}
		}
		return IntValue(i), nil
	case Decimal:
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, &TypeConversionError{Column: c.Name, Value: raw, Kind: c.Kind, Err: err}
		}
		return DecimalValue(d), nil
	default:
		return StringValue(raw), nil
	}
}

// coerce converts 'v' to a value comparable with the column.
// Text is parsed for numeric columns, numbers are compared by their text on string columns.
func (c Column) coerce(v Value) (Value, error) {
	switch {
	case c.Kind == String && v.kind != String:
		return StringValue(v.String()), nil
	case c.Kind != String && v.kind == String:
		return c.Parse(v.text)
	}
	return v, nil
}

// match reports whether the ship's field equals 'v'. Numeric columns compare numerically.
func (c Column) match(s *Ship, v Value) bool {
	fv, ok := c.field(s)
	if !ok {
		return false
	}
	if c.Kind == String {
		return fv.text == v.text
	}
	return fv.num.Equal(v.num)
}

// UnknownColumnError is returned when a column name is not part of the table.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist in the data", e.Column)
}

// TypeConversionError is returned when a text cannot be converted to the column's native type.
type TypeConversionError struct {
	Column string
	Value  string
	Kind   Kind
	Err    error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s for column %q: %v", e.Value, e.Kind, e.Column, e.Err)
}

func (e *TypeConversionError) Unwrap() error { return e.Err }
