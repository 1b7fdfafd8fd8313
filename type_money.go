package cruise

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money of 'value' major units in 'currency'.
func M[T numeric](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD creates a Money in US dollars.
func USD[T numeric](value T) Money { return M(value, "USD") }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// rounded returns the value rounded to the currency fraction.
func (m Money) rounded() decimal.Decimal {
	return m.value.Round(int32(m.currency().Fraction))
}

// String returns the string representation of the money value, e.g. "$1,150,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.rounded().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// DivInt divides the amount in n equal parts.
func (m Money) DivInt(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the amount as a plain JSON number, rounded to the currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.rounded().String()), nil
}
