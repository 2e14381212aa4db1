// SPDX-License-Identifier: MIT

package genome

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrBadFormat indicates an unreadable alias table.
var ErrBadFormat = errors.New("genome: bad alias table format")

// AliasMap maps gene alias tokens to the sorted feature IDs they name.
type AliasMap struct {
	byAlias   map[string][]string
	byFeature map[string][]string
}

// NewAliasMap returns an empty table.
func NewAliasMap() *AliasMap {
	return &AliasMap{
		byAlias:   make(map[string][]string),
		byFeature: make(map[string][]string),
	}
}

// Add records that every alias names feature fid.
func (a *AliasMap) Add(fid string, aliases ...string) {
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		a.byAlias[alias] = insertSorted(a.byAlias[alias], fid)
		a.byFeature[fid] = insertSorted(a.byFeature[fid], alias)
	}
}

func insertSorted(list []string, v string) []string {
	i, found := slices.BinarySearch(list, v)
	if found {
		return list
	}

	return slices.Insert(list, i, v)
}

// Features returns the feature IDs named by alias, or nil.
func (a *AliasMap) Features(alias string) []string {
	return slices.Clone(a.byAlias[alias])
}

// Aliases returns the aliases recorded for feature fid.
func (a *AliasMap) Aliases(fid string) []string {
	return slices.Clone(a.byFeature[fid])
}

// Len returns the number of distinct aliases.
func (a *AliasMap) Len() int { return len(a.byAlias) }

// ReadAliases parses a tab-separated alias table. The first line is a
// header; every other non-blank line holds a feature ID and its aliases
// separated by commas or spaces.
func ReadAliases(r io.Reader) (*AliasMap, error) {
	out := NewAliasMap()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fid, rest, ok := strings.Cut(text, "\t")
		if !ok || strings.TrimSpace(fid) == "" {
			return nil, fmt.Errorf("%w: line %d: want feature_id<TAB>aliases", ErrBadFormat, line)
		}
		out.Add(strings.TrimSpace(fid), strings.FieldsFunc(rest, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	return out, nil
}
