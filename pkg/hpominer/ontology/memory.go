package ontology

import (
	"iter"

	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// Memory is a Provider backed by in-memory maps. It is the simplest
// concrete implementation of the contract — useful in tests, and as a
// template for richer providers such as package obographs.
type Memory struct {
	terms    map[term.ID]Term
	children map[term.ID][]term.ID
}

// NewMemory builds an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		terms:    make(map[term.ID]Term),
		children: make(map[term.ID][]term.ID),
	}
}

// AddTerm registers a term and its is_a edge to parent. Passing a zero
// parent ID registers the term without an edge (e.g. the root itself).
func (m *Memory) AddTerm(t Term, parent term.ID) {
	m.terms[t.ID] = t
	if !parent.IsZero() {
		m.children[parent] = append(m.children[parent], t.ID)
	}
}

// TermByID implements Provider.
func (m *Memory) TermByID(id term.ID) (Term, bool) {
	t, ok := m.terms[id]
	return t, ok
}

// Descendants implements Provider via depth-first traversal of the is_a
// child edges registered through AddTerm. root itself is never yielded.
func (m *Memory) Descendants(root term.ID) iter.Seq[term.ID] {
	return func(yield func(term.ID) bool) {
		visited := make(map[term.ID]struct{})
		var walk func(id term.ID) bool
		walk = func(id term.ID) bool {
			for _, child := range m.children[id] {
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = struct{}{}
				if !yield(child) {
					return false
				}
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}
