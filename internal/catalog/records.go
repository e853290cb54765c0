package catalog

import (
	"catalogbuilder/internal/model"
	"catalogbuilder/internal/sheet"
)

// PriceRecords resolves the price table columns and returns one record per
// row with a non-empty code.
func PriceRecords(t *sheet.Table) ([]model.PriceRecord, error) {
	cols, err := sheet.Resolve("price", t.Header, sheet.CodeColumn, sheet.NameColumn, sheet.PriceColumn)
	if err != nil {
		return nil, err
	}

	records := make([]model.PriceRecord, 0, len(t.Rows))
	for i := range t.Rows {
		code := NormalizeCode(t.Cell(i, cols["code"]))
		if code == "" {
			continue
		}
		records = append(records, model.PriceRecord{
			Code:  code,
			Model: t.Cell(i, cols["name"]),
			Price: ParsePrice(t.Cell(i, cols["price"])),
		})
	}
	return records, nil
}

func StockRecords(t *sheet.Table) ([]model.StockRecord, error) {
	cols, err := sheet.Resolve("stock", t.Header, sheet.CodeColumn, sheet.QuantityColumn)
	if err != nil {
		return nil, err
	}

	records := make([]model.StockRecord, 0, len(t.Rows))
	for i := range t.Rows {
		code := NormalizeCode(t.Cell(i, cols["code"]))
		if code == "" {
			continue
		}
		records = append(records, model.StockRecord{
			Code:     code,
			Quantity: ParseQuantity(t.Cell(i, cols["quantity"])),
		})
	}
	return records, nil
}
