// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/metapath/core"
)

// idSet is a set of reaction IDs.
type idSet map[int]struct{}

func (s idSet) add(id int) { s[id] = struct{}{} }

// Model is the metabolic network aggregate root.
type Model struct {
	opts    Options
	log     zerolog.Logger
	aliases AliasSource
	mapName string

	reactions map[int]*core.Reaction // authoritative reaction table
	byBigg    map[string]int
	features  map[string]idSet // feature ID → triggered reactions
	orphans   idSet
	succ      map[string]idSet // compound → consuming reactions
	prod      map[string]idSet // compound → producing reactions

	nodes       map[int]*core.Node
	metabolites map[string][]int // compound → node IDs, ascending

	lastID int
}

// New builds an empty model. aliases may be nil, in which case every
// reaction is an orphan.
func New(aliases AliasSource, opts ...Option) (*Model, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	name := cfg.MapName
	if name == "" {
		name = DefaultMapName
	}

	return &Model{
		opts:        cfg,
		log:         cfg.Logger,
		aliases:     aliases,
		mapName:     name,
		reactions:   make(map[int]*core.Reaction),
		byBigg:      make(map[string]int),
		features:    make(map[string]idSet),
		orphans:     make(idSet),
		succ:        make(map[string]idSet),
		prod:        make(map[string]idSet),
		nodes:       make(map[int]*core.Node),
		metabolites: make(map[string][]int),
	}, nil
}

// AddReaction registers r and indexes it by BiGG ID, by triggering
// feature and by compound.
func (m *Model) AddReaction(r *core.Reaction) error {
	if _, dup := m.reactions[r.ID]; dup {
		return fmt.Errorf("%w: id %d", ErrDuplicateReaction, r.ID)
	}
	if _, dup := m.byBigg[r.BiggID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateReaction, r.BiggID)
	}

	// 1) registry
	m.reactions[r.ID] = r
	m.byBigg[r.BiggID] = r.ID
	if r.ID > m.lastID {
		m.lastID = r.ID
	}

	// 2) gene aliases → features
	connected := false
	if m.aliases != nil {
		for _, alias := range r.Aliases() {
			for _, fid := range m.aliases.Features(alias) {
				set, ok := m.features[fid]
				if !ok {
					set = make(idSet)
					m.features[fid] = set
				}
				set.add(r.ID)
				connected = true
			}
		}
	}
	if !connected {
		m.orphans.add(r.ID)
	}

	// 3) successor/producer double registration
	for _, s := range r.Stoichiometry() {
		if r.Reversible || !s.IsProduct() {
			indexAdd(m.succ, s.Metabolite, r.ID)
		}
		if r.Reversible || s.IsProduct() {
			indexAdd(m.prod, s.Metabolite, r.ID)
		}
	}

	return nil
}

func indexAdd(index map[string]idSet, key string, id int) {
	set, ok := index[key]
	if !ok {
		set = make(idSet)
		index[key] = set
	}
	set.add(id)
}

// AddNode registers a display node. Metabolite nodes are also grouped by
// BiGG ID. Nodes share the map's ID space with reactions.
func (m *Model) AddNode(n *core.Node) {
	m.nodes[n.ID] = n
	if n.ID > m.lastID {
		m.lastID = n.ID
	}
	if !n.IsMetabolite() || n.BiggID == "" {
		return
	}
	ids := m.metabolites[n.BiggID]
	i, found := slices.BinarySearch(ids, n.ID)
	if !found {
		m.metabolites[n.BiggID] = slices.Insert(ids, i, n.ID)
	}
}

// resolve maps a set of IDs to reactions in ID order, keeping those that
// pass keep (nil keeps all).
func (m *Model) resolve(set idSet, keep func(*core.Reaction) bool) []*core.Reaction {
	out := make([]*core.Reaction, 0, len(set))
	for _, id := range slices.Sorted(maps.Keys(set)) {
		r := m.reactions[id]
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// MapName returns the map name.
func (m *Model) MapName() string { return m.mapName }

// Limits returns the configured tuning scalars.
func (m *Model) Limits() Limits { return m.opts.Limits }

// Logger returns the model's logger.
func (m *Model) Logger() zerolog.Logger { return m.log }

// LastID returns the highest reaction or node ID in use.
func (m *Model) LastID() int { return m.lastID }

// ReactionCount returns the number of registered reactions.
func (m *Model) ReactionCount() int { return len(m.reactions) }

// NodeCount returns the number of registered nodes.
func (m *Model) NodeCount() int { return len(m.nodes) }

// Reaction returns the reaction with the given BiGG ID, or nil.
func (m *Model) Reaction(biggID string) *core.Reaction {
	id, ok := m.byBigg[biggID]
	if !ok {
		return nil
	}

	return m.reactions[id]
}

// ReactionByID returns the reaction with the given internal ID, or nil.
func (m *Model) ReactionByID(id int) *core.Reaction { return m.reactions[id] }

// Reactions returns every reaction in ID order.
func (m *Model) Reactions() []*core.Reaction {
	out := slices.Collect(maps.Values(m.reactions))
	slices.SortFunc(out, core.CompareReactions)

	return out
}

// ReactionsFor returns the reactions triggered by feature fid.
func (m *Model) ReactionsFor(fid string) []*core.Reaction {
	return m.resolve(m.features[fid], nil)
}

// Features returns every feature ID that triggers at least one reaction.
func (m *Model) Features() []string {
	return slices.Sorted(maps.Keys(m.features))
}

// Orphans returns the reactions with no triggering feature.
func (m *Model) Orphans() []*core.Reaction { return m.resolve(m.orphans, nil) }

// Successors returns the reactions that can currently consume compound.
func (m *Model) Successors(compound string) []*core.Reaction {
	return m.resolve(m.succ[compound], func(r *core.Reaction) bool { return r.CanConsume(compound) })
}

// Producers returns the reactions that can currently yield compound.
func (m *Model) Producers(compound string) []*core.Reaction {
	return m.resolve(m.prod[compound], func(r *core.Reaction) bool { return r.CanProduce(compound) })
}

// Compounds returns every compound named by a reaction, sorted.
func (m *Model) Compounds() []string {
	set := make(map[string]struct{}, len(m.succ)+len(m.prod))
	for c := range m.succ {
		set[c] = struct{}{}
	}
	for c := range m.prod {
		set[c] = struct{}{}
	}

	return slices.Sorted(maps.Keys(set))
}

// HasCompound reports whether any reaction or node names compound.
func (m *Model) HasCompound(compound string) bool {
	if _, ok := m.succ[compound]; ok {
		return true
	}
	if _, ok := m.prod[compound]; ok {
		return true
	}
	_, ok := m.metabolites[compound]

	return ok
}

// InputCompounds returns the compounds with at least one active successor.
func (m *Model) InputCompounds() []string {
	out := make([]string, 0, len(m.succ))
	for _, c := range slices.Sorted(maps.Keys(m.succ)) {
		if len(m.Successors(c)) > 0 {
			out = append(out, c)
		}
	}

	return out
}

// Node returns the node with the given ID.
func (m *Model) Node(id int) (*core.Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// Metabolites returns every node drawing compound, in node ID order.
func (m *Model) Metabolites(compound string) ([]*core.Node, error) {
	ids, ok := m.metabolites[compound]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMetaboliteNotFound, compound)
	}
	out := make([]*core.Node, len(ids))
	for i, id := range ids {
		out[i] = m.nodes[id]
	}

	return out, nil
}

// Primary returns the primary node of compound, falling back to its
// lowest-numbered node.
func (m *Model) Primary(compound string) (*core.Node, error) {
	nodes, err := m.Metabolites(compound)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Primary {
			return n, nil
		}
	}

	return nodes[0], nil
}
