package cmd

import (
	"slices"
	"testing"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	if _, ok := c.Flags["v"]; !ok {
		t.Error("global flag -v is not completed")
	}
	for _, e := range commands {
		if _, ok := c.Sub[e.cmd.Name()]; !ok {
			t.Errorf("subcommand %q is not completed", e.cmd.Name())
		}
	}

	if _, ok := c.Sub["view"].Flags["json"]; !ok {
		t.Error("view -json is not completed")
	}

	columns := c.Sub["filter"].Flags["c"].Predict("")
	for _, want := range []string{"Ship Name", "Passenger Capacity", "Profit"} {
		if !slices.Contains(columns, want) {
			t.Errorf("filter -c predicts %q, missing %q", columns, want)
		}
	}

	topic := c.Sub["topic"]
	if topic.Args == nil {
		t.Fatal("topic arguments are not completed")
	}
	if topics := topic.Args.Predict(""); !slices.Contains(topics, "menu") {
		t.Errorf("topic predicts %q, missing %q", topics, "menu")
	}
}

func TestCompletion_FilterProfit(t *testing.T) {
	if _, ok := Completion().Sub["filter"].Flags["profit"]; !ok {
		t.Error("filter -profit is not completed")
	}
}
