package catalog

import (
	"time"

	"catalogbuilder/internal/enrich"
	"catalogbuilder/internal/model"
	"catalogbuilder/internal/stock"
)

// Restock threshold for the run summary.
const restockedMinQuantity = 5

// Build left-joins stock levels onto the price list and enriches every row.
// The output has exactly one item per price record, in price list order.
func Build(prices []model.PriceRecord, levels *stock.Levels) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(prices))
	for _, p := range prices {
		qty := levels.Quantity(p.Code)
		attrs := enrich.Derive(p.Model)
		items = append(items, model.CatalogItem{
			Code:      p.Code,
			Model:     p.Model,
			Price:     p.Price,
			Quantity:  qty,
			Power:     attrs.Power,
			Circuits:  attrs.Circuits,
			WiFi:      attrs.WiFi,
			ImagePath: attrs.ImagePath,
			Status:    enrich.Status(qty),
			Category:  attrs.Category,
			PowerTier: attrs.PowerTier,
		})
	}
	return items
}

func Summarize(items []model.CatalogItem, now time.Time) model.RunSummary {
	s := model.RunSummary{Timestamp: now, TotalProducts: len(items)}
	for _, it := range items {
		if it.Quantity > 0 {
			s.AvailableProducts++
			s.NewProducts++
		}
		if it.Quantity > restockedMinQuantity {
			s.RestockedProducts++
		}
	}
	return s
}
