package hpominer

import (
	"testing"

	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

func buildTestMiner(t *testing.T) *Miner {
	t.Helper()
	mem := ontology.NewMemory()
	root := ontology.PhenotypicAbnormality
	mem.AddTerm(ontology.Term{ID: root, Label: "Phenotypic abnormality"}, term.ID{})

	intDis, _ := term.Parse("HP:0001249")
	mem.AddTerm(ontology.Term{ID: intDis, Label: "Intellectual disability"}, root)

	macro, _ := term.Parse("HP:0000256")
	mem.AddTerm(ontology.Term{ID: macro, Label: "Macrocephaly"}, root)

	scol, _ := term.Parse("HP:0002650")
	mem.AddTerm(ontology.Term{ID: scol, Label: "Scoliosis"}, root)

	cleft, _ := term.Parse("HP:0000175")
	mem.AddTerm(ontology.Term{ID: cleft, Label: "Cleft palate"}, root)

	hydro, _ := term.Parse("HP:0000126")
	mem.AddTerm(ontology.Term{ID: hydro, Label: "Hydronephrosis"}, root)

	miner, err := New(mem)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return miner
}

func TestProcessThreeCommaSeparatedHits(t *testing.T) {
	m := buildTestMiner(t)
	hits := m.Process("Intellectual disability, macrocephaly, scoliosis")

	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d: %+v", len(hits), hits)
	}
	wantLabels := []string{"Intellectual disability", "Macrocephaly", "Scoliosis"}
	for i, want := range wantLabels {
		if hits[i].Label != want {
			t.Errorf("hit %d label = %q, want %q", i, hits[i].Label, want)
		}
		if !hits[i].IsObserved {
			t.Errorf("hit %d should be observed", i)
		}
	}
}

func TestProcessNegatedSentence(t *testing.T) {
	m := buildTestMiner(t)
	hits := m.Process("The patient did not have macrocephaly.")

	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d: %+v", len(hits), hits)
	}
	if hits[0].Label != "Macrocephaly" {
		t.Errorf("label = %q", hits[0].Label)
	}
	if hits[0].IsObserved {
		t.Error("expected IsObserved = false")
	}
}

func TestProcessExcludedCue(t *testing.T) {
	m := buildTestMiner(t)
	hits := m.Process("Macrocephaly was excluded.")
	if len(hits) != 1 || hits[0].IsObserved {
		t.Fatalf("expected 1 excluded hit, got %+v", hits)
	}
}

func TestProcessEmptyInput(t *testing.T) {
	m := buildTestMiner(t)
	if hits := m.Process(""); len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	m := buildTestMiner(t)
	const text = "Intellectual disability, macrocephaly, scoliosis"
	first := m.Process(text)
	second := m.Process(text)

	if len(first) != len(second) {
		t.Fatalf("expected idempotent results, got %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("hit %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestProcessTermIDsDeduplicates(t *testing.T) {
	m := buildTestMiner(t)
	ids := m.ProcessTermIDs("Macrocephaly. Later, macrocephaly was also noted.")
	if len(ids) != 1 {
		t.Fatalf("expected 1 distinct term id, got %d: %v", len(ids), ids)
	}
}

func TestProcessToJSON(t *testing.T) {
	m := buildTestMiner(t)
	out, err := m.ProcessToJSON("Scoliosis")
	if err != nil {
		t.Fatalf("ProcessToJSON failed: %v", err)
	}
	if out == "" || out == "[]" {
		t.Errorf("expected non-empty hit array, got %q", out)
	}
}

func TestProcessToJSONEmpty(t *testing.T) {
	m := buildTestMiner(t)
	out, err := m.ProcessToJSON("")
	if err != nil {
		t.Fatalf("ProcessToJSON failed: %v", err)
	}
	if out != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}

func TestSpansWithinBounds(t *testing.T) {
	m := buildTestMiner(t)
	text := "fetal hydronephrosis and bilateral dilated ureter"
	hits := m.Process(text)
	for _, h := range hits {
		if h.Span.Start < 0 || h.Span.End > len(text) || h.Span.Start >= h.Span.End {
			t.Errorf("span out of bounds: %+v", h)
		}
	}
}
