package cruise

import "testing"

// newTestLedger creates a ledger from 'ships' or fails the test.
func newTestLedger(t *testing.T, ships ...*Ship) *Ledger {
	t.Helper()
	l, err := NewLedger(ships...)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	return l
}

// names returns the names of 'ships' in order.
func names(ships []*Ship) []string {
	n := make([]string, 0, len(ships))
	for _, s := range ships {
		n = append(n, s.Name())
	}
	return n
}
