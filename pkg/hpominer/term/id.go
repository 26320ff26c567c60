// Package term defines the ontology term identifier shared by the ontology
// contract and the dictionary it backs.
package term

import (
	"fmt"
	"strings"
)

// ID is an opaque, equality-comparable ontology term identifier, printable
// as a colon-joined prefix:local pair (e.g. "HP:0001250"). It is immutable.
type ID struct {
	Prefix string
	Local  string
}

// Parse splits "PREFIX:LOCAL" into an ID at the first colon. It returns an
// error if the string has no colon or either part is empty; any further
// colons stay in the local part.
func Parse(s string) (ID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ID{}, fmt.Errorf("term: malformed id %q, want PREFIX:LOCAL", s)
	}
	return ID{Prefix: parts[0], Local: parts[1]}, nil
}

// String renders the id as "PREFIX:LOCAL".
func (id ID) String() string {
	return id.Prefix + ":" + id.Local
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.Prefix == "" && id.Local == ""
}

// MarshalJSON renders the id as its "PREFIX:LOCAL" string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON parses the id from its "PREFIX:LOCAL" string form.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
