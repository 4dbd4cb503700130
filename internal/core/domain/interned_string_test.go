package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/peerseek/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("n1")
	is2 := domain.NewInternedString("n1")

	// Verify that the underlying handles are equal
	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "n1" {
		t.Errorf("Expected String() to return %q, got %q", "n1", is1.String())
	}

	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("Expected zero value to be empty, got %q", zero.String())
	}
}

func TestInternedStringJSON(t *testing.T) {
	type frame struct {
		Node domain.NodeID `json:"node"`
	}

	data, err := json.Marshal(frame{Node: domain.NewInternedString("n3")})
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"node":"n3"}` {
		t.Errorf("Expected JSON %q, got %q", `{"node":"n3"}`, string(data))
	}

	var decoded frame
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Node != domain.NewInternedString("n3") {
		t.Errorf("Expected decoded node n3, got %q", decoded.Node.String())
	}
}

func TestNewInternedStrings(t *testing.T) {
	ids := domain.NewInternedStrings([]string{"r1", "r2", "r1"})

	if len(ids) != 3 {
		t.Fatalf("Expected 3 interned strings, got %d", len(ids))
	}
	if ids[0].Value() != ids[2].Value() {
		t.Errorf("Expected handles to be equal for identical strings")
	}
	if ids[1].String() != "r2" {
		t.Errorf("Expected r2, got %q", ids[1].String())
	}

	if got := domain.NewInternedStrings(nil); len(got) != 0 {
		t.Errorf("Expected empty slice, got %d elements", len(got))
	}
}
