package cruise

import (
	"errors"
	"fmt"
)

// Validate checks the ship record invariants and returns an error with all validation failures.
func (s *Ship) Validate() error {
	var errs []error
	if s.name == "" {
		errs = append(errs, errors.New("ship name is empty"))
	}
	if s.capacity <= 0 {
		errs = append(errs, fmt.Errorf("passenger capacity must be positive, got %d", s.capacity))
	}
	for _, f := range []struct {
		column string
		amount Money
	}{
		{"ticket revenue", s.ticketRevenue},
		{"additional revenue", s.additionalRevenue},
		{"operating cost", s.operatingCost},
	} {
		if f.amount.IsNegative() {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.column, f.amount))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid ship %q: %w", s.name, err)
	}
	return nil
}
