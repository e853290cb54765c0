package model

import "time"

// PowerNotSpecified is emitted when no power rating can be read from the model name.
const PowerNotSpecified = "Not specified"

type Circuits string

const (
	SingleCircuit Circuits = "single"
	DoubleCircuit Circuits = "double"
)

type Status string

const (
	InStock    Status = "in_stock"
	OutOfStock Status = "out_of_stock"
)

type Category string

const (
	CategoryMeteor   Category = "meteor"
	CategoryLaggartt Category = "laggartt"
	CategoryDevotion Category = "devotion"
	CategoryMK       Category = "mk"
	CategoryOther    Category = "other"
)

type PowerTier string

const (
	PowerLow     PowerTier = "low"
	PowerMedium  PowerTier = "medium"
	PowerHigh    PowerTier = "high"
	PowerUnknown PowerTier = "unknown"
)

// PriceRecord is one cleaned row of the price list.
type PriceRecord struct {
	Code  string
	Model string
	Price float64
}

// StockRecord is one cleaned row of the stock table.
type StockRecord struct {
	Code     string
	Quantity int
}

// CatalogItem is what the front end reads from the catalog file.
type CatalogItem struct {
	Code      string    `json:"code"`
	Model     string    `json:"model"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Power     string    `json:"power"`
	Circuits  Circuits  `json:"circuits"`
	WiFi      bool      `json:"wifi"`
	ImagePath string    `json:"image_path"`
	Status    Status    `json:"status"`
	Category  Category  `json:"category"`
	PowerTier PowerTier `json:"power_tier"`
}

type RunSummary struct {
	Timestamp         time.Time `json:"timestamp"`
	TotalProducts     int       `json:"total_products"`
	AvailableProducts int       `json:"available_products"`
	NewProducts       int       `json:"new_products"`
	RestockedProducts int       `json:"restocked_products"`
}
