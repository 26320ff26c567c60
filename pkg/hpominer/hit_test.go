package hpominer

import (
	"encoding/json"
	"testing"

	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

func TestHitString(t *testing.T) {
	id, _ := term.Parse("HP:0000256")
	h := Hit{TermID: id, Label: "Macrocephaly", Span: Span{Start: 10, End: 22}, IsObserved: true}
	want := "Macrocephaly [HP:0000256] @ 10..22 (observed)"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHitStringExcluded(t *testing.T) {
	id, _ := term.Parse("HP:0000256")
	h := Hit{TermID: id, Label: "Macrocephaly", Span: Span{Start: 10, End: 22}, IsObserved: false}
	want := "Macrocephaly [HP:0000256] @ 10..22 (excluded)"
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHitJSON(t *testing.T) {
	id, _ := term.Parse("HP:0000256")
	h := Hit{TermID: id, Label: "Macrocephaly", Span: Span{Start: 10, End: 22}, IsObserved: true}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got Hit
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}
