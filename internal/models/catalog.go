package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OptionKind string

const (
	OptionKindColor    OptionKind = "color"
	OptionKindMaterial OptionKind = "material"
	OptionKindSeat     OptionKind = "seat"
)

type CarModel struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	BasePrice decimal.Decimal `db:"base_price"`
	Currency  string          `db:"currency"`
	CreatedAt time.Time       `db:"created_at"`
}

// CatalogOption is a selectable customization with its surcharge.
type CatalogOption struct {
	Kind      OptionKind      `db:"kind"`
	Value     string          `db:"value"`
	Label     string          `db:"label"`
	Price     decimal.Decimal `db:"price"`
	CreatedAt time.Time       `db:"created_at"`
}

// DefaultCurrency is used by the built-in catalog.
const DefaultCurrency = "USD"

// DefaultModels is the built-in model lineup used when no database is configured
// and by the seeder.
func DefaultModels() []CarModel {
	return []CarModel{
		{ID: "coupe-gt", Name: "Coupe GT", BasePrice: decimal.NewFromInt(42000), Currency: DefaultCurrency},
		{ID: "roadster", Name: "Roadster", BasePrice: decimal.NewFromInt(55500), Currency: DefaultCurrency},
		{ID: "touring-suv", Name: "Touring SUV", BasePrice: decimal.NewFromInt(48900), Currency: DefaultCurrency},
	}
}

// DefaultOptions is the built-in option list, in display order.
func DefaultOptions() []CatalogOption {
	return []CatalogOption{
		{Kind: OptionKindColor, Value: "red", Label: "Rosso Red", Price: decimal.RequireFromString("850.00")},
		{Kind: OptionKindColor, Value: "black", Label: "Obsidian Black", Price: decimal.Zero},
		{Kind: OptionKindColor, Value: "white", Label: "Pearl White", Price: decimal.RequireFromString("450.00")},
		{Kind: OptionKindColor, Value: "blue", Label: "Deep Ocean Blue", Price: decimal.RequireFromString("650.00")},
		{Kind: OptionKindMaterial, Value: "fabric", Label: "Technical Fabric", Price: decimal.Zero},
		{Kind: OptionKindMaterial, Value: "leather", Label: "Nappa Leather", Price: decimal.RequireFromString("2200.00")},
		{Kind: OptionKindMaterial, Value: "alcantara", Label: "Alcantara", Price: decimal.RequireFromString("1750.50")},
		{Kind: OptionKindSeat, Value: "standard", Label: "Standard Seats", Price: decimal.Zero},
		{Kind: OptionKindSeat, Value: "sport", Label: "Sport Bucket Seats", Price: decimal.RequireFromString("1299.99")},
		{Kind: OptionKindSeat, Value: "comfort", Label: "Heated Comfort Seats", Price: decimal.RequireFromString("999.00")},
	}
}

// QuoteItem is one priced line of a cost summary.
type QuoteItem struct {
	Kind  string
	Value string
	Label string
	Price decimal.Decimal
}

type Quote struct {
	ModelID  string
	Currency string
	Items    []QuoteItem
	Total    decimal.Decimal
}
