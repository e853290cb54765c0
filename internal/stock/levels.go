package stock

import "catalogbuilder/internal/model"

// Levels indexes stock quantities by product code. When a code appears more
// than once the first row wins.
type Levels struct {
	byCode     map[string]int
	Duplicates int
}

func NewLevels(records []model.StockRecord) *Levels {
	l := &Levels{byCode: make(map[string]int, len(records))}
	for _, r := range records {
		if _, ok := l.byCode[r.Code]; ok {
			l.Duplicates++
			continue
		}
		l.byCode[r.Code] = r.Quantity
	}
	return l
}

// Quantity returns the stock for code, 0 when the code is unknown.
func (l *Levels) Quantity(code string) int {
	return l.byCode[code]
}

func (l *Levels) Has(code string) bool {
	_, ok := l.byCode[code]
	return ok
}

func (l *Levels) Len() int {
	return len(l.byCode)
}
