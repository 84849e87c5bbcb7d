package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderState is the in-progress order. Totals are derived from the selections.
type OrderState struct {
	Entree        *MenuItem
	SideDish      *MenuItem
	Accompaniment *MenuItem
	ItemTotal     decimal.Decimal
	Tax           decimal.Decimal
	OrderTotal    decimal.Decimal
}

// IsEmpty reports whether nothing has been selected yet.
func (s OrderState) IsEmpty() bool {
	return s.Entree == nil && s.SideDish == nil && s.Accompaniment == nil
}

// Selection returns the selected item for a menu category (nil if none).
func (s OrderState) Selection(category string) *MenuItem {
	switch category {
	case CategoryEntree:
		return s.Entree
	case CategorySideDish:
		return s.SideDish
	case CategoryAccompaniment:
		return s.Accompaniment
	}
	return nil
}

// Receipt is issued when checkout is submitted, just before the order is reset.
type Receipt struct {
	ID          string
	Order       OrderState
	SubmittedAt time.Time
}

// Number is the short order number shown to the customer.
func (r Receipt) Number() string {
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}
