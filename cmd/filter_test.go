package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/cruise"
)

func TestFilterLedger(t *testing.T) {
	_, _, _, err := filterLedger(cruise.Load(), "Profit", "600000", false)
	var unknown *cruise.UnknownColumnError
	if !errors.As(err, &unknown) {
		t.Errorf("filter on Profit without -profit: error = %v, want an *UnknownColumnError", err)
	}

	column, _, ships, err := filterLedger(cruise.Load(), "Profit", "600000", true)
	if err != nil {
		t.Fatalf("filter on Profit with -profit failed: %v", err)
	}
	if column.Name != cruise.ProfitColumn.Name {
		t.Errorf("column = %q, want %q", column.Name, cruise.ProfitColumn.Name)
	}
	if len(ships) != 1 || ships[0].Name() != "Sea Explorer" {
		t.Errorf("got %d ships, want only Sea Explorer", len(ships))
	}
}

func TestFilterLedger_EmptyTable(t *testing.T) {
	l, err := cruise.NewLedger()
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	if _, _, _, err := filterLedger(l, "Profit", "0", true); !errors.Is(err, cruise.ErrEmptyTable) {
		t.Errorf("error = %v, want %v", err, cruise.ErrEmptyTable)
	}
}
