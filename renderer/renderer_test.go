package renderer

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cruise"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// checkGolden compares 'got' with the content of testdata/'name'.
func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	file := filepath.Join("testdata", name)
	want, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read golden file %q: %v", file, err)
	}
	if got == string(want) {
		return
	}
	if *fixGolden {
		if err := os.WriteFile(file, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update golden file %q: %v", file, err)
		}
		t.Logf("updated golden file %q", file)
		return
	}
	t.Errorf("output mismatch for %q\n--- got ---\n%s\n--- want ---\n%s", file, got, want)
}

func TestDataMarkdown(t *testing.T) {
	l := cruise.Load()
	checkGolden(t, "data_preview.md", DataMarkdown(l))

	if _, err := l.ComputeProfit(); err != nil {
		t.Fatalf("ComputeProfit() failed: %v", err)
	}
	checkGolden(t, "data_preview_profit.md", DataMarkdown(l))
}

func TestFilterMarkdown(t *testing.T) {
	l := cruise.Load()
	c, v, ships, err := l.FilterText("Passenger Capacity", "2200")
	if err != nil {
		t.Fatalf("FilterText() failed: %v", err)
	}
	checkGolden(t, "filter_capacity.md", FilterMarkdown(c, v, ships, l.HasProfit()))
}

func TestProfitMarkdown(t *testing.T) {
	l := cruise.Load()
	s, err := l.ComputeProfit()
	if err != nil {
		t.Fatalf("ComputeProfit() failed: %v", err)
	}
	checkGolden(t, "profit.md", ProfitMarkdown(l, s))
}

func TestColumnsMarkdown(t *testing.T) {
	checkGolden(t, "columns.md", ColumnsMarkdown(cruise.Schema()))
}

func TestProfit_NotComputed(t *testing.T) {
	s := cruise.NewShip("Drydock", 10, cruise.USD(1), cruise.USD(1), cruise.USD(1))
	if got := profit(s); got != "-" {
		t.Errorf("profit() = %q, want %q", got, "-")
	}
}
