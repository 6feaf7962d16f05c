package graph

import (
	"fmt"
	"strings"
)

// StepKind selects the shape of a step in the diagram.
type StepKind int

const (
	StepAction StepKind = iota
	StepStart
	StepInput
	StepOutcome
)

// Step is one state of the customer flow.
type Step struct {
	ID    string
	Label string
	Kind  StepKind
	Next  []Edge
}

// Edge is a transition, optionally labelled with the input that takes it.
type Edge struct {
	To    string
	Label string
}

// Overlay highlights the steps a session went through.
type Overlay struct {
	Visited []string
	Current string
}

// PurchaseFlow describes the customer interaction of the machine.
func PurchaseFlow() []Step {
	return []Step{
		{ID: "menu", Label: "Role menu", Kind: StepStart, Next: []Edge{{To: "currency", Label: "1"}}},
		{ID: "currency", Label: "Select currency", Kind: StepInput, Next: []Edge{
			{To: "cash", Label: "dollars/shekels"},
			{To: "menu", Label: "exit"},
		}},
		{ID: "cash", Label: "Insert cash", Kind: StepInput, Next: []Edge{{To: "item"}}},
		{ID: "item", Label: "Select item", Kind: StepInput, Next: []Edge{
			{To: "confirm"},
			{To: "refund", Label: "cancel"},
		}},
		{ID: "confirm", Label: "Confirm purchase", Next: []Edge{
			{To: "sale", Label: "balance >= price"},
			{To: "directive", Label: "balance < price"},
		}},
		{ID: "directive", Label: "Insufficient funds", Kind: StepInput, Next: []Edge{
			{To: "top-up", Label: "cash"},
			{To: "item", Label: "another"},
			{To: "refund", Label: "cancel"},
		}},
		{ID: "top-up", Label: "Select currency and top up", Kind: StepInput, Next: []Edge{
			{To: "item"},
			{To: "refund", Label: "exit"},
		}},
		{ID: "sale", Label: "Dispense and give change", Kind: StepOutcome, Next: []Edge{{To: "currency"}}},
		{ID: "refund", Label: "Refund balance", Kind: StepOutcome, Next: []Edge{{To: "currency"}}},
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string from steps.
// It applies semantic styling:
// - Start: ((Circle))
// - Outcome: [[Subroutine]]
// - Input: [/Parallelogram/]
// - Default: [Rectangle]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(steps []Step, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, step := range steps {
		safeID := sanitizeMermaidID(step.ID)

		opener, closer := "[", "]"
		switch step.Kind {
		case StepStart:
			opener, closer = "((", "))"
		case StepOutcome:
			opener, closer = "[[", "]]"
		case StepInput:
			opener, closer = "[/", "/]"
		}

		label := step.Label
		if label == "" {
			label = step.ID
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer)

		for _, e := range step.Next {
			arrow := "-->"
			if e.Label != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(e.Label))
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(e.To))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Visited {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
