// SPDX-License-Identifier: MIT

package flowmod

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// tableHeader is the first line of the tab-separated form.
const tableHeader = "type\tgenes"

// record is the structured form of one modifier.
type record struct {
	Type  string `json:"type" yaml:"type"`
	Genes string `json:"genes" yaml:"genes"`
}

func (m Modifier) record() record {
	return record{Type: m.Kind.String(), Genes: geneKey(m.Genes)}
}

func (r record) modifier() (Modifier, error) {
	kind, err := ParseKind(r.Type)
	if err != nil {
		return Modifier{}, err
	}

	return NewModifier(kind, r.Genes)
}

func (l *List) records() []record {
	out := make([]record, len(l.mods))
	for i, m := range l.mods {
		out[i] = m.record()
	}

	return out
}

func (l *List) addRecords(recs []record) error {
	for i, r := range recs {
		mod, err := r.modifier()
		if err != nil {
			return fmt.Errorf("modifier %d: %w", i+1, err)
		}
		l.Add(mod)
	}

	return nil
}

// ReadTable parses the tab-separated form: a header line, then one
// "type<TAB>genes" row per modifier with genes separated by spaces.
func ReadTable(r io.Reader, opts ...Option) (*List, error) {
	l := NewList(opts...)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 || strings.TrimSpace(text) == "" {
			continue
		}
		kind, genes, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: want type<TAB>genes", ErrParseFailure, line)
		}
		mod, err := record{Type: kind, Genes: genes}.modifier()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		l.Add(mod)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	return l, nil
}

// WriteTable writes the tab-separated form read by ReadTable.
func (l *List) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, tableHeader)
	for _, m := range l.mods {
		fmt.Fprintf(bw, "%s\t%s\n", m.Kind, geneKey(m.Genes))
	}

	return bw.Flush()
}

// MarshalJSON encodes the list as an array of {"type", "genes"} objects.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.records())
}

// UnmarshalJSON adds the modifiers of a JSON array to l.
func (l *List) UnmarshalJSON(data []byte) error {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	l.init()

	return l.addRecords(recs)
}

// MarshalYAML encodes the list as a sequence of type/genes mappings.
func (l *List) MarshalYAML() (any, error) {
	return l.records(), nil
}

// UnmarshalYAML adds the modifiers of a YAML sequence to l.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	var recs []record
	if err := node.Decode(&recs); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	l.init()

	return l.addRecords(recs)
}

// init prepares a zero List decoded in place.
func (l *List) init() {
	if l.byKey == nil {
		*l = *NewList()
	}
}

// LoadFile reads a modifier list, choosing the form by extension: .json,
// .yaml or .yml, anything else is the tab-separated table.
func LoadFile(path string, opts ...Option) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := NewList(opts...)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, l)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, l)
	default:
		var t *List
		if t, err = ReadTable(strings.NewReader(string(data)), opts...); err == nil {
			l = t
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}
