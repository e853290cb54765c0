package sheet

import (
	"errors"
	"fmt"
	"strings"
)

var ErrColumnNotFound = errors.New("required column not found")

// ColumnError reports which canonical field could not be matched in a table.
type ColumnError struct {
	Table  string
	Field  string
	Header []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s table: no %s column among %q", e.Table, e.Field, e.Header)
}

func (e *ColumnError) Unwrap() error { return ErrColumnNotFound }

// ColumnRule maps a canonical field to the header substrings that identify it.
type ColumnRule struct {
	Field      string
	Candidates []string
}

var (
	CodeColumn = ColumnRule{
		Field:      "code",
		Candidates: []string{"артикул", "article", "код", "articul", "sku"},
	}
	NameColumn = ColumnRule{
		Field:      "name",
		Candidates: []string{"товар", "наименование", "модель", "name", "product", "название"},
	}
	PriceColumn = ColumnRule{
		Field:      "price",
		Candidates: []string{"розничная", "цена", "price", "retail", "стоимость", "руб"},
	}
	QuantityColumn = ColumnRule{
		Field:      "quantity",
		Candidates: []string{"в наличии", "остаток", "количество", "quantity", "stock", "наличие", "кол-во"},
	}
)

// FindColumn returns the index of the first header, in header order, that
// contains any candidate case-insensitively.
func FindColumn(header []string, candidates []string) (int, bool) {
	for i, h := range header {
		lower := strings.ToLower(h)
		for _, c := range candidates {
			if strings.Contains(lower, strings.ToLower(c)) {
				return i, true
			}
		}
	}
	return -1, false
}

// Resolve matches every rule against the table header. The result maps
// rule.Field to the column index.
func Resolve(table string, header []string, rules ...ColumnRule) (map[string]int, error) {
	cols := make(map[string]int, len(rules))
	for _, r := range rules {
		i, ok := FindColumn(header, r.Candidates)
		if !ok {
			return nil, &ColumnError{Table: table, Field: r.Field, Header: header}
		}
		cols[r.Field] = i
	}
	return cols, nil
}
