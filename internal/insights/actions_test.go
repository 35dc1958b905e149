package insights

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractActionItemsFromHeader(t *testing.T) {
	text := "Weekly sync notes\n\nNext Steps:\n- Draft the quarterly report\n- Book the conference room\n- Circulate meeting minutes\n\nThanks everyone"

	items := ExtractActionItems(text)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %v", len(items), items)
	}
	if items[1] != "Book the conference room" {
		t.Fatalf("items[1] = %q", items[1])
	}
	if !strings.Contains(items[0], "Draft the quarterly report") {
		t.Fatalf("items[0] = %q", items[0])
	}
}

func TestExtractActionItemsFromVerbs(t *testing.T) {
	text := "We need to finalize the budget before Friday. Bob will present the roadmap to the team."

	items := ExtractActionItems(text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if !strings.HasPrefix(strings.ToLower(items[0]), "need to finalize") {
		t.Fatalf("items[0] = %q", items[0])
	}
}

func TestExtractActionItemsDedupesCaseInsensitively(t *testing.T) {
	text := "We need to finalize the budget. Again: we NEED TO finalize the budget."

	items := ExtractActionItems(text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item after dedupe, got %d: %v", len(items), items)
	}
	// First occurrence keeps its original casing.
	if items[0] != "need to finalize the budget" {
		t.Fatalf("items[0] = %q", items[0])
	}
}

func TestExtractActionItemsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "We must handle task number %d before launch. ", i)
	}

	items := ExtractActionItems(b.String())
	if len(items) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(items))
	}
}

func TestExtractActionItemsNone(t *testing.T) {
	if items := ExtractActionItems("Nothing actionable in here."); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
}

func TestExtractDecisions(t *testing.T) {
	text := "After debate we agreed that option one is the better path. The team also approved on extending the trial period."

	decisions := ExtractDecisions(text)
	if len(decisions) != 2 {
		t.Fatalf("expected 2 decisions, got %d: %v", len(decisions), decisions)
	}
	if !strings.HasPrefix(decisions[0], "agreed that") {
		t.Fatalf("decisions[0] = %q", decisions[0])
	}
}

func TestExtractDecisionsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "We agreed that proposal number %d moves forward. ", i)
	}

	decisions := ExtractDecisions(b.String())
	if len(decisions) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(decisions))
	}
}
