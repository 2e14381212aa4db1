// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/metapath/core"
)

// Defaults for optional reaction fields of the map document.
const (
	defaultReactionName = "<unknown>"
	defaultCoefficient  = 1.0
)

// mapMeta is element 0 of the map document.
type mapMeta struct {
	MapName        string `json:"map_name"`
	MapID          string `json:"map_id"`
	MapDescription string `json:"map_description"`
}

// mapBody is element 1 of the map document.
type mapBody struct {
	Reactions map[string]reactionDoc `json:"reactions"`
	Nodes     map[string]nodeDoc     `json:"nodes"`
}

type geneDoc struct {
	BiggID string `json:"bigg_id"`
	Name   string `json:"name"`
}

type stoichDoc struct {
	BiggID      string   `json:"bigg_id"`
	Coefficient *float64 `json:"coefficient"`
}

type reactionDoc struct {
	Name          *string     `json:"name"`
	BiggID        string      `json:"bigg_id"`
	Reversibility bool        `json:"reversibility"`
	LabelX        float64     `json:"label_x"`
	LabelY        float64     `json:"label_y"`
	Rule          string      `json:"gene_reaction_rule"`
	Genes         []geneDoc   `json:"genes"`
	Metabolites   []stoichDoc `json:"metabolites"`
}

type nodeDoc struct {
	NodeType string  `json:"node_type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	BiggID   string  `json:"bigg_id"`
	Name     string  `json:"name"`
	Primary  bool    `json:"node_is_primary"`
}

// name returns the reaction name or its default.
func (d *reactionDoc) name() string {
	if d.Name == nil {
		return defaultReactionName
	}

	return *d.Name
}

// coefficient converts a document coefficient to a signed integer,
// keeping fractional coefficients on their side of the reaction. An exact
// zero stays zero and is rejected by the caller.
func (s stoichDoc) coefficient() int {
	c := defaultCoefficient
	if s.Coefficient != nil {
		c = *s.Coefficient
	}
	n := int(math.Round(c))
	switch {
	case n != 0:
		return n
	case c < 0:
		return -1
	case c > 0:
		return 1
	}

	return 0
}

// LoadFile opens path and calls Load.
func LoadFile(path string, aliases AliasSource, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	defer f.Close()

	return Load(f, aliases, opts...)
}

// Load builds a model from a map document: a two-element JSON array whose
// first element holds metadata and whose second holds the "reactions" and
// "nodes" objects keyed by stringified integer IDs.
//
// Any decoding problem returns ErrBadFormat and no model. A reaction drawn
// twice under the same BiGG ID is kept once (the lowest ID wins).
func Load(r io.Reader, aliases AliasSource, opts ...Option) (*Model, error) {
	// 1) Decode the outer array.
	var parts []json.RawMessage
	if err := json.NewDecoder(r).Decode(&parts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want a 2-element array, got %d elements", ErrBadFormat, len(parts))
	}
	var meta mapMeta
	if err := json.Unmarshal(parts[0], &meta); err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrBadFormat, err)
	}
	var body mapBody
	if err := json.Unmarshal(parts[1], &body); err != nil {
		return nil, fmt.Errorf("%w: body: %v", ErrBadFormat, err)
	}

	// 2) Build the empty model; the document name applies unless overridden.
	if meta.MapName != "" {
		opts = append([]Option{WithMapName(meta.MapName)}, opts...)
	}
	m, err := New(aliases, opts...)
	if err != nil {
		return nil, err
	}

	// 3) Reactions, in ascending ID order.
	rxnIDs, rxnKeys, err := sortedIDs(body.Reactions)
	if err != nil {
		return nil, err
	}
	skipped := 0
	for _, id := range rxnIDs {
		doc := body.Reactions[rxnKeys[id]]
		if _, dup := m.byBigg[doc.BiggID]; dup {
			skipped++
			continue
		}
		rxn, err := doc.build(id)
		if err != nil {
			return nil, err
		}
		if err = m.AddReaction(rxn); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}

	// 4) Nodes.
	nodeIDs, nodeKeys, err := sortedIDs(body.Nodes)
	if err != nil {
		return nil, err
	}
	for _, id := range nodeIDs {
		doc := body.Nodes[nodeKeys[id]]
		n := &core.Node{
			ID:      id,
			Kind:    core.Marker,
			Loc:     core.Coordinate{X: doc.X, Y: doc.Y},
			BiggID:  doc.BiggID,
			Name:    doc.Name,
			Primary: doc.Primary,
		}
		if doc.NodeType == "metabolite" {
			n.Kind = core.Metabolite
		}
		m.AddNode(n)
	}

	m.log.Info().
		Str("map", m.mapName).
		Int("reactions", len(m.reactions)).
		Int("duplicates", skipped).
		Int("nodes", len(m.nodes)).
		Int("orphans", len(m.orphans)).
		Msg("metabolic map loaded")

	return m, nil
}

// build converts a reaction document into a reaction with internal ID id.
func (d *reactionDoc) build(id int) (*core.Reaction, error) {
	opts := []core.ReactionOption{
		core.WithReversible(d.Reversibility),
		core.WithLabel(d.LabelX, d.LabelY),
		core.WithRule(d.Rule),
	}
	for _, g := range d.Genes {
		opts = append(opts, core.WithAliases(g.BiggID, g.Name))
	}
	rxn, err := core.NewReaction(id, d.BiggID, d.name(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: reaction %d: %v", ErrBadFormat, id, err)
	}
	for _, s := range d.Metabolites {
		if err = rxn.AddStoich(s.BiggID, s.coefficient()); err != nil {
			return nil, fmt.Errorf("%w: reaction %s: %v", ErrBadFormat, d.BiggID, err)
		}
	}

	return rxn, nil
}

// sortedIDs parses the stringified integer keys of a document object and
// returns them ascending together with the key each ID came from.
func sortedIDs[V any](objects map[string]V) ([]int, map[int]string, error) {
	keys := make(map[int]string, len(objects))
	for key := range objects {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: id %q is not an integer", ErrBadFormat, key)
		}
		if _, dup := keys[id]; dup {
			return nil, nil, fmt.Errorf("%w: id %d appears twice", ErrBadFormat, id)
		}
		keys[id] = key
	}

	return slices.Sorted(maps.Keys(keys)), keys, nil
}
