// Package table provides the in-memory tabular dataset model shared by the
// analysis layers: ordered headers, string-valued rows, and column access.
package table

import (
	"fmt"
	"strings"

	"gridiron/internal/errors"
)

// Row represents a data row as header-keyed string values
type Row map[string]string

// Table represents the complete dataset loaded for this process.
// It is never mutated after load.
type Table struct {
	Headers []string // Column headers in file order
	Rows    []Row    // Data rows
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// HasColumn reports whether the named column exists. Names are matched
// exactly, including case and interior spaces.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Require verifies that every named column exists. The returned error lists
// the missing names in the order they were requested.
func (t *Table) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.ValidationError(fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", ")))
	}
	return nil
}

// Column returns the raw string values of the named column in row order.
// Rows without the key yield empty strings.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}
