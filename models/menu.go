package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          string
	Category    string // "entree", "side_dish", "accompaniment"
	Name        string
	Description string
	Price       decimal.Decimal
	Calories    int
}

const (
	CategoryEntree        = "entree"
	CategorySideDish      = "side_dish"
	CategoryAccompaniment = "accompaniment"
)
