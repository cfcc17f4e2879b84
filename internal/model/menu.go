package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem represents a dish in the catalog.
type MenuItem struct {
	ID           string          `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Category     string          `json:"category" db:"category"`
	VariantLabel string          `json:"variantLabel,omitempty" db:"variant_label"`
	Available    bool            `json:"available" db:"available"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}
