// SPDX-License-Identifier: MIT

package sbml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/model"
)

// ErrBadDocument indicates XML that is not an SBML model.
var ErrBadDocument = errors.New("sbml: bad document")

// Identifier prefixes stripped on import.
const (
	reactionPrefix = "R_"
	speciesPrefix  = "M_"
	genePrefix     = "G_"
)

// Document is the parsed subset of an SBML file.
type Document struct {
	XMLName xml.Name `xml:"sbml"`
	Model   struct {
		ID           string        `xml:"id,attr"`
		Name         string        `xml:"name,attr"`
		Reactions    []Reaction    `xml:"listOfReactions>reaction"`
		GeneProducts []GeneProduct `xml:"listOfGeneProducts>geneProduct"`
	} `xml:"model"`
}

// Reaction is one SBML reaction.
type Reaction struct {
	ID          string             `xml:"id,attr"`
	Name        string             `xml:"name,attr"`
	Reversible  bool               `xml:"reversible,attr"`
	Reactants   []SpeciesReference `xml:"listOfReactants>speciesReference"`
	Products    []SpeciesReference `xml:"listOfProducts>speciesReference"`
	Association *Association       `xml:"geneProductAssociation"`
}

// SpeciesReference is a reactant or product entry. A missing
// stoichiometry means 1.
type SpeciesReference struct {
	Species       string   `xml:"species,attr"`
	Stoichiometry *float64 `xml:"stoichiometry,attr"`
}

// Association is a gene product association tree. XMLName is "and",
// "or" or "geneProductRef"; the root is "geneProductAssociation".
type Association struct {
	XMLName     xml.Name
	GeneProduct string        `xml:"geneProduct,attr"`
	Children    []Association `xml:",any"`
}

// GeneProduct is an entry of the fbc gene product table.
type GeneProduct struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Label string `xml:"label,attr"`
}

// Read parses an SBML document.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return &doc, nil
}

// Specs converts every reaction with an identifier into an import spec.
func (d *Document) Specs() []model.ReactionSpec {
	genes := make(map[string]GeneProduct, len(d.Model.GeneProducts))
	for _, g := range d.Model.GeneProducts {
		genes[g.ID] = g
	}

	specs := make([]model.ReactionSpec, 0, len(d.Model.Reactions))
	for _, r := range d.Model.Reactions {
		id := strings.TrimPrefix(r.ID, reactionPrefix)
		if id == "" {
			continue
		}
		spec := model.ReactionSpec{
			BiggID:     id,
			Name:       r.Name,
			Reversible: r.Reversible,
		}
		if r.Association != nil {
			spec.Rule = r.Association.rule()
			spec.Aliases = r.Association.aliases(genes)
		}
		for _, s := range r.Reactants {
			spec.Stoich = append(spec.Stoich, s.stoich(-1))
		}
		for _, s := range r.Products {
			spec.Stoich = append(spec.Stoich, s.stoich(1))
		}
		specs = append(specs, spec)
	}

	return specs
}

func (s SpeciesReference) stoich(sign int) core.Stoich {
	n := 1
	if s.Stoichiometry != nil {
		n = int(math.Round(*s.Stoichiometry))
		if n == 0 && *s.Stoichiometry != 0 {
			n = 1
		}
	}

	return core.Stoich{
		Metabolite:  strings.TrimPrefix(s.Species, speciesPrefix),
		Coefficient: sign * n,
	}
}

// rule renders the association as a gene rule, e.g. "(b1 or (b2 and b3))".
func (a *Association) rule() string {
	switch a.XMLName.Local {
	case "geneProductRef":
		return strings.TrimPrefix(a.GeneProduct, genePrefix)
	case "and", "or":
		parts := make([]string, 0, len(a.Children))
		for i := range a.Children {
			if p := a.Children[i].rule(); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return "(" + strings.Join(parts, " "+a.XMLName.Local+" ") + ")"
	}

	// root
	parts := make([]string, 0, len(a.Children))
	for i := range a.Children {
		if p := a.Children[i].rule(); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " and ")
}

// aliases lists every referenced gene with its name and label.
func (a *Association) aliases(genes map[string]GeneProduct) []string {
	var out []string
	if a.XMLName.Local == "geneProductRef" {
		out = append(out, strings.TrimPrefix(a.GeneProduct, genePrefix))
		if g, ok := genes[a.GeneProduct]; ok {
			out = append(out, g.Name, g.Label)
		}
	}
	for i := range a.Children {
		out = append(out, a.Children[i].aliases(genes)...)
	}

	return core.NormalizeTokens(out)
}

// ImportFile reads the SBML file at path into m and returns the number of
// reactions added.
func ImportFile(m *model.Model, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	return m.Import(doc.Specs()), nil
}
