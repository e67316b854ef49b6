// Package rels parses a WordprocessingML relationship part into an
// immutable id→target table.
//
// The relationship part is an XML list of entries, each carrying an Id, a
// Type, and a Target attribute. The table is built once per document and
// is safe for concurrent reads after Parse returns.
package rels

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Sentinel errors for relationship operations.
var (
	// ErrParse indicates the relationship part is not well-formed XML or
	// does not match the expected schema.
	ErrParse = errors.New("malformed relationship part")

	// ErrNotFound indicates no relationship with the requested id exists.
	ErrNotFound = errors.New("relationship not found")
)

// Relationship is one id→target mapping from the relationship part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Table is an immutable relationship lookup built from one document's
// relationship part. Read-only after construction.
type Table struct {
	byID    map[string]string
	entries []Relationship
}

type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// Parse builds a Table from the raw bytes of a relationship part.
// Returns ErrParse if the XML is malformed; callers decide whether an
// unresolvable document is fatal rather than proceeding with an empty
// table.
//
// Id uniqueness is an input invariant, not enforced here: on duplicate ids
// the first entry wins.
func Parse(data []byte) (*Table, error) {
	var doc relationshipsXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	t := &Table{
		byID:    make(map[string]string, len(doc.Relationships)),
		entries: make([]Relationship, 0, len(doc.Relationships)),
	}
	for _, r := range doc.Relationships {
		if _, dup := t.byID[r.ID]; dup {
			continue
		}
		t.byID[r.ID] = r.Target
		t.entries = append(t.entries, Relationship{ID: r.ID, Type: r.Type, Target: r.Target})
	}
	return t, nil
}

// Resolve returns the target of the relationship with the given id.
// Deterministic and total: the same (table, id) pair always yields the
// same target or ErrNotFound.
func (t *Table) Resolve(id string) (string, error) {
	target, ok := t.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return target, nil
}

// All returns the table's entries in document order, duplicates removed.
func (t *Table) All() []Relationship {
	out := make([]Relationship, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct relationship ids in the table.
func (t *Table) Len() int {
	return len(t.byID)
}
