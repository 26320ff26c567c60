package ontology

import (
	"testing"

	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

func buildSmallTree(t *testing.T) *Memory {
	t.Helper()
	m := NewMemory()
	root := PhenotypicAbnormality
	m.AddTerm(Term{ID: root, Label: "Phenotypic abnormality"}, term.ID{})

	abnormalHead, _ := term.Parse("HP:0000234")
	m.AddTerm(Term{ID: abnormalHead, Label: "Abnormality of the head"}, root)

	macrocephaly, _ := term.Parse("HP:0000256")
	m.AddTerm(Term{
		ID:    macrocephaly,
		Label: "Macrocephaly",
		Synonyms: []Synonym{
			{Name: "Increased head circumference"},
		},
	}, abnormalHead)

	scoliosis, _ := term.Parse("HP:0002650")
	m.AddTerm(Term{ID: scoliosis, Label: "Scoliosis"}, root)

	return m
}

func TestMemoryDescendantsExcludesRoot(t *testing.T) {
	m := buildSmallTree(t)
	var ids []term.ID
	for id := range m.Descendants(PhenotypicAbnormality) {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if id == PhenotypicAbnormality {
			t.Errorf("root must not be included among its own descendants")
		}
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 descendants, got %d: %v", len(ids), ids)
	}
}

func TestMemoryTermByID(t *testing.T) {
	m := buildSmallTree(t)
	macrocephaly, _ := term.Parse("HP:0000256")
	got, ok := m.TermByID(macrocephaly)
	if !ok {
		t.Fatal("expected macrocephaly to be found")
	}
	if got.Label != "Macrocephaly" {
		t.Errorf("label = %q", got.Label)
	}
	if len(got.Synonyms) != 1 || got.Synonyms[0].Name != "Increased head circumference" {
		t.Errorf("synonyms = %v", got.Synonyms)
	}
}

func TestMemoryTermByIDMissing(t *testing.T) {
	unknown, _ := term.Parse("HP:9999999")
	m := buildSmallTree(t)
	if _, ok := m.TermByID(unknown); ok {
		t.Error("expected missing term to return ok=false")
	}
}
