// SPDX-License-Identifier: MIT

package flowmod

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/metapath/core"
)

// Modifier pins the direction of the reactions whose trigger genes are
// exactly Genes.
type Modifier struct {
	Kind  Kind
	Genes []string // sorted, unique
}

// NewModifier builds a modifier from gene tokens. Each argument may itself
// hold several tokens separated by spaces or commas.
func NewModifier(kind Kind, genes ...string) (Modifier, error) {
	var tokens []string
	for _, g := range genes {
		tokens = append(tokens, splitGenes(g)...)
	}
	tokens = core.NormalizeTokens(tokens)
	if len(tokens) == 0 {
		return Modifier{}, fmt.Errorf("%w: %s modifier has no genes", ErrParseFailure, kind)
	}

	return Modifier{Kind: kind, Genes: tokens}, nil
}

func splitGenes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

// geneKey identifies the reactions a gene set matches.
func geneKey(genes []string) string { return strings.Join(genes, " ") }

// Key identifies the modifier: its kind and its gene set.
func (m Modifier) Key() string { return m.Kind.String() + ":" + geneKey(m.Genes) }

// Equal reports whether m and o have the same kind and gene set.
func (m Modifier) Equal(o Modifier) bool {
	return m.Kind == o.Kind && slices.Equal(m.Genes, o.Genes)
}

// Matches reports whether r's trigger genes are exactly m's genes.
func (m Modifier) Matches(r *core.Reaction) bool {
	return slices.Equal(r.Triggers(), m.Genes)
}

// String renders the modifier as "kind(genes)".
func (m Modifier) String() string {
	return fmt.Sprintf("%s(%s)", m.Kind, geneKey(m.Genes))
}
