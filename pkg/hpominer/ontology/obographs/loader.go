// Package obographs loads a phenotype ontology from its OBO-graph JSON
// serialization (the format HPO itself ships, optionally gzip-compressed)
// into an ontology.Provider. It is the only package that knows the wire
// format; the mining core only ever sees an ontology through the
// ontology.Provider contract.
package obographs

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/hpominer/pkg/hpominer/internalerr"
	"github.com/cognicore/hpominer/pkg/hpominer/ontology"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// document mirrors the subset of the OBO-graph JSON schema this loader
// needs: one or more graphs, each with nodes (terms) and edges (is_a
// relations between term IRIs).
type document struct {
	Graphs []graph `json:"graphs"`
}

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID   string    `json:"id"`
	Lbl  string    `json:"lbl"`
	Meta *nodeMeta `json:"meta"`
}

type nodeMeta struct {
	Synonyms []synonym `json:"synonyms"`
}

type synonym struct {
	Pred string `json:"pred"`
	Val  string `json:"val"`
}

type edge struct {
	Sub  string `json:"sub"`
	Pred string `json:"pred"`
	Obj  string `json:"obj"`
}

// Load reads an OBO-graph JSON ontology file (transparently gunzipping
// when the content starts with the gzip magic number, whatever the file
// name) and builds an in-memory ontology.Provider from its is_a edges.
func Load(path string) (*ontology.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrOntologyUnavailable, path, err)
	}
	defer f.Close()

	r, err := maybeGunzip(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrOntologyUnavailable, path, err)
	}

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrOntologyUnavailable, path, err)
	}

	return FromDocumentBytes(doc)
}

// maybeGunzip peeks the first two bytes to detect the gzip magic number,
// without requiring the caller to know whether the file is compressed.
func maybeGunzip(f *os.File) (io.Reader, error) {
	magic := make([]byte, 2)
	n, err := io.ReadFull(f, magic)
	if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
		return nil, seekErr
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	if n == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(f)
	}
	return f, nil
}

// FromDocumentBytes builds an ontology.Memory from a parsed OBO-graph
// document. Exported for tests that construct the document directly
// instead of loading a file.
func FromDocumentBytes(doc document) (*ontology.Memory, error) {
	mem := ontology.NewMemory()

	labels := make(map[term.ID]string, 256)
	synonymsByTerm := make(map[term.ID][]ontology.Synonym, 256)
	parentOf := make(map[term.ID]term.ID, 256)

	for _, g := range doc.Graphs {
		for _, n := range g.Nodes {
			id, ok := iriToTermID(n.ID)
			if !ok {
				continue
			}
			labels[id] = n.Lbl
			if n.Meta != nil {
				for _, syn := range n.Meta.Synonyms {
					if !strings.HasSuffix(syn.Pred, "Synonym") {
						continue
					}
					synonymsByTerm[id] = append(synonymsByTerm[id], ontology.Synonym{Name: syn.Val})
				}
			}
		}
		for _, e := range g.Edges {
			if e.Pred != "is_a" {
				continue
			}
			sub, ok1 := iriToTermID(e.Sub)
			obj, ok2 := iriToTermID(e.Obj)
			if !ok1 || !ok2 {
				continue
			}
			// An is_a multi-parent ontology keeps only the first edge seen
			// per child for subtree-walk purposes; HPO's phenotypic
			// abnormality subtree is a near-tree in practice.
			if _, exists := parentOf[sub]; !exists {
				parentOf[sub] = obj
			}
		}
	}

	for id, label := range labels {
		mem.AddTerm(ontology.Term{
			ID:       id,
			Label:    label,
			Synonyms: synonymsByTerm[id],
		}, parentOf[id])
	}

	return mem, nil
}

// iriToTermID converts an OBO PURL such as
// "http://purl.obolibrary.org/obo/HP_0001250" into the "HP:0001250" form
// term.ID uses.
func iriToTermID(iri string) (term.ID, bool) {
	idx := strings.LastIndexByte(iri, '/')
	tail := iri
	if idx >= 0 {
		tail = iri[idx+1:]
	}
	underscoreIdx := strings.IndexByte(tail, '_')
	if underscoreIdx < 0 {
		return term.ID{}, false
	}
	prefix := tail[:underscoreIdx]
	local := tail[underscoreIdx+1:]
	if prefix == "" || local == "" {
		return term.ID{}, false
	}
	return term.ID{Prefix: prefix, Local: local}, true
}
