// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// table is a tab-separated csv.Writer that remembers nothing but its
// first error.
type table struct {
	w *csv.Writer
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{w: csv.NewWriter(w)}
	t.w.Comma = '\t'
	t.row(header...)

	return t
}

// row writes one record; errors surface in close.
func (t *table) row(fields ...string) {
	_ = t.w.Write(fields)
}

func (t *table) close() error {
	t.w.Flush()

	return t.w.Error()
}

func itoa(n int) string { return strconv.Itoa(n) }

func yesNo(b bool) string {
	if b {
		return "Y"
	}

	return ""
}
