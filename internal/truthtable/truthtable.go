package truthtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyTable is returned when the input contains no data rows after
// comment and blank-line stripping.
var ErrEmptyTable = errors.New("truth table contains no rows")

// TokenError reports an input token that is not a recognized boolean
// literal.
type TokenError struct {
	Token string
	Line  int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("line %d: %q is not a boolean value", e.Line, e.Token)
}

// WidthError reports a row whose column count differs from the first
// row of the table.
type WidthError struct {
	Row  int
	Got  int
	Want int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("row %d has %d column(s), want %d", e.Row, e.Got, e.Want)
}

// Table holds the rows of a parsed truth table. The rows listed in the
// input are the valid rows; the invalid rows are the remainder of the
// full boolean domain and are computed on demand by Partition.
type Table struct {
	ncols int
	rows  [][]bool
}

func (t *Table) NCols() int {
	return t.ncols
}

func (t *Table) Rows() [][]bool {
	return t.rows
}

// Parse reads a truth table from a line-oriented stream. Tokens are
// whitespace-separated; 0, F and f parse as false, 1, T and t as true.
// A '#' starts a comment running to end of line. Lines with no tokens
// left after comment stripping are skipped.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	var rows [][]bool
	ncols := 0
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		row := make([]bool, 0, len(tokens))
		for _, token := range tokens {
			switch token {
			case "0", "F", "f":
				row = append(row, false)
			case "1", "T", "t":
				row = append(row, true)
			default:
				return nil, &TokenError{Token: token, Line: lineno}
			}
		}

		if ncols == 0 {
			ncols = len(row)
		} else if len(row) != ncols {
			return nil, &WidthError{Row: len(rows) + 1, Got: len(row), Want: ncols}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading truth table: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{ncols: ncols, rows: rows}, nil
}

// Partition splits the full 2^ncols boolean domain into the rows listed
// in the table (valid) and their complement (invalid). Duplicate input
// rows are collapsed; order of first appearance is preserved.
func (t *Table) Partition() (valid, invalid [][]bool) {
	seen := make(map[string]struct{}, len(t.rows))
	valid = make([][]bool, 0, len(t.rows))
	for _, row := range t.rows {
		key := rowKey(row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		valid = append(valid, row)
	}

	for _, row := range Domain(t.ncols) {
		if _, ok := seen[rowKey(row)]; !ok {
			invalid = append(invalid, row)
		}
	}
	return valid, invalid
}

func rowKey(row []bool) string {
	key := make([]byte, len(row))
	for i, b := range row {
		if b {
			key[i] = '1'
		} else {
			key[i] = '0'
		}
	}
	return string(key)
}
