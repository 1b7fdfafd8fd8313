package cruise

import (
	"reflect"
	"sort"
	"testing"
)

func TestLedger_Query(t *testing.T) {
	l := Load()

	testCases := []struct {
		name string
		expr string
		want any
	}{
		{
			name: "first ship name",
			expr: "$[0].name",
			want: "Ocean Voyager",
		},
		{
			name: "capacity of the last ship",
			expr: "$[4].capacity",
			want: 2100.0,
		},
		{
			name: "large ships",
			expr: "$[?(@.capacity > 2100)].name",
			want: []any{"Sunset Dream", "Wave Rider"},
		},
		{
			name: "no match",
			expr: "$[?(@.operatingCost > 5000000)].name",
			want: []any{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := l.Query(tc.expr)
			if err != nil {
				t.Fatalf("Query(%q) failed: %v", tc.expr, err)
			}
			if list, ok := got.([]any); ok {
				sort.Slice(list, func(i, j int) bool { return list[i].(string) < list[j].(string) })
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Query(%q) = %#v, want %#v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestLedger_Query_Profit(t *testing.T) {
	l := Load()

	got, err := l.Query("$[?(@.profit)].name")
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if list, _ := got.([]any); len(list) != 0 {
		t.Errorf("Query() before ComputeProfit = %v, want no ship", got)
	}

	if _, err := l.ComputeProfit(); err != nil {
		t.Fatalf("ComputeProfit() failed: %v", err)
	}
	got, err = l.Query("$[?(@.profit >= 1300000)].name")
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	list, _ := got.([]any)
	sort.Slice(list, func(i, j int) bool { return list[i].(string) < list[j].(string) })
	if want := []any{"Sunset Dream", "Wave Rider"}; !reflect.DeepEqual(list, want) {
		t.Errorf("Query() = %v, want %v", list, want)
	}
}

func TestLedger_Query_Invalid(t *testing.T) {
	l := Load()
	if _, err := l.Query("$[?(@.capacity >"); err == nil {
		t.Error("Query() of an invalid expression succeeded, want an error")
	}
}
