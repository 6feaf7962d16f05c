package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/vending/internal/presentation/graph"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		steps    []graph.Step
		contains []string
	}{
		{
			name:     "Start Shape",
			steps:    []graph.Step{{ID: "menu", Kind: graph.StepStart}},
			contains: []string{`menu(("menu"))`},
		},
		{
			name:     "Outcome Shape",
			steps:    []graph.Step{{ID: "sale", Label: "Sale", Kind: graph.StepOutcome}},
			contains: []string{`sale[["Sale"]]`},
		},
		{
			name:     "Input Shape",
			steps:    []graph.Step{{ID: "cash", Kind: graph.StepInput}},
			contains: []string{`cash[/"cash"/]`},
		},
		{
			name:     "ID Sanitization",
			steps:    []graph.Step{{ID: "top-up"}, {ID: "a.b/c"}},
			contains: []string{`top_up["top-up"]`, `a_b_c["a.b/c"]`},
		},
		{
			name: "Edge Labels",
			steps: []graph.Step{{ID: "A", Next: []graph.Edge{
				{To: "B", Label: `type "cash"`},
				{To: "C"},
			}}},
			contains: []string{`A -- "type 'cash'" --> B`, "A --> C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.steps, nil)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(graph.PurchaseFlow(), &graph.Overlay{
		Visited: []string{"currency", "cash", "cash", "item"},
		Current: "top-up",
	})

	assert.Equal(t, 1, strings.Count(got, "class cash visited;"))
	assert.Contains(t, got, "class top_up current;")
}

func TestPurchaseFlow_EdgesResolve(t *testing.T) {
	steps := graph.PurchaseFlow()
	ids := make(map[string]bool, len(steps))
	for _, s := range steps {
		ids[s.ID] = true
	}
	for _, s := range steps {
		for _, e := range s.Next {
			assert.True(t, ids[e.To], "%s -> %s points to an unknown step", s.ID, e.To)
		}
	}

	got := graph.GenerateMermaid(steps, nil)
	assert.Contains(t, got, `directive -- "another" --> item`)
	assert.Contains(t, got, `confirm -- "balance < price" --> directive`)
}
