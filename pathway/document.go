// SPDX-License-Identifier: MIT

package pathway

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the saved form of a pathway.
type Document struct {
	Goal     string       `json:"goal,omitempty"`
	Elements []ElementDoc `json:"elements"`
}

// ElementDoc is the saved form of one step.
type ElementDoc struct {
	Reaction string `json:"reaction"`
	Output   string `json:"output"`
	Reversed bool   `json:"reversed"`
}

// Document captures p for saving.
func (p *Pathway) Document() Document {
	doc := Document{Goal: p.goal, Elements: make([]ElementDoc, len(p.elements))}
	for i, e := range p.elements {
		doc.Elements[i] = ElementDoc{Reaction: e.reaction.BiggID, Output: e.output, Reversed: e.reversed}
	}

	return doc
}

// Save writes p as indented JSON.
func (p *Pathway) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(p.Document())
}

// Load reads a saved pathway and rebuilds it against res.
func Load(r io.Reader, res Resolver) (*Pathway, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return FromDocument(doc, res)
}

// FromDocument rebuilds a pathway, checking that every reaction exists,
// every output participates on the side the direction implies, reversed
// steps are legal and consecutive steps connect.
func FromDocument(doc Document, res Resolver) (*Pathway, error) {
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrBadDocument)
	}
	p := &Pathway{elements: make([]Element, 0, len(doc.Elements)), goal: doc.Goal}
	for i, ed := range doc.Elements {
		r := res.Reaction(ed.Reaction)
		if r == nil {
			return nil, fmt.Errorf("%w: step %d: unknown reaction %q", ErrBadDocument, i, ed.Reaction)
		}
		if !r.Has(ed.Output) {
			return nil, fmt.Errorf("%w: step %d: %s is not part of %s", ErrBadDocument, i, ed.Output, ed.Reaction)
		}
		if ed.Reversed == r.IsProduct(ed.Output) {
			return nil, fmt.Errorf("%w: step %d: direction does not reach %s", ErrBadDocument, i, ed.Output)
		}
		if ed.Reversed && !r.Reversible {
			return nil, fmt.Errorf("%w: step %d: %v", ErrBadDocument, i, ErrIrreversible)
		}
		e := Element{reaction: r, output: ed.Output, reversed: ed.Reversed}
		if i > 0 {
			if p.Contains(r) {
				return nil, fmt.Errorf("%w: step %d: %s used twice", ErrBadDocument, i, ed.Reaction)
			}
			if !e.Consumes(p.Terminus()) {
				return nil, fmt.Errorf("%w: step %d: %s does not consume %s", ErrBadDocument, i, ed.Reaction, p.Terminus())
			}
		}
		p.elements = append(p.elements, e)
	}

	return p, nil
}
