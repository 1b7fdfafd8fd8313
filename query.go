package cruise

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of the ships,
// e.g. "$[?(@.capacity > 2000)].name".
//
// The document is an array of ship objects keyed by column keys (see [Column.Key]).
// Amounts are plain numbers.
func (l *Ledger) Query(expr string) (any, error) {
	raw, err := json.Marshal(l.ships)
	if err != nil {
		return nil, fmt.Errorf("error encoding ships: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding ships: %w", err)
	}
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return val, nil
}
