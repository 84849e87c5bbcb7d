package services

import (
	"errors"
	"fmt"

	"lunch-tray/models"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCategory = errors.New("unknown menu category")
	ErrUnknownItem     = errors.New("unknown menu item")
)

func item(id, category, name, description, price string, calories int) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Category:    category,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Calories:    calories,
	}
}

var EntreeMenuItems = []models.MenuItem{
	item("e1", models.CategoryEntree, "Cauliflower", "Whole cauliflower, brined, roasted, and deep fried", "7.00", 300),
	item("e2", models.CategoryEntree, "Three Bean Chili", "Black beans, red beans, kidney beans, slow cooked, topped with onion", "4.00", 250),
	item("e3", models.CategoryEntree, "Mushroom Pasta", "Penne pasta, mushrooms, basil, with plum tomatoes cooked in garlic and olive oil", "5.50", 230),
	item("e4", models.CategoryEntree, "Spicy Black Bean Skillet", "Seasonal vegetables, black beans, house spice blend, served with avocado and quick pickled onions", "5.50", 330),
}

var SideDishMenuItems = []models.MenuItem{
	item("s1", models.CategorySideDish, "Summer Salad", "Heirloom tomatoes, butter lettuce, peaches, avocado, balsamic dressing", "2.50", 245),
	item("s2", models.CategorySideDish, "Butternut Squash Soup", "Roasted butternut squash, roasted peppers, chili oil", "3.00", 132),
	item("s3", models.CategorySideDish, "Spicy Potatoes", "Marble potatoes, roasted, and fried in house spice blend", "2.00", 735),
	item("s4", models.CategorySideDish, "Coconut Rice", "Rice, coconut milk, lime, and sugar", "1.50", 680),
}

var AccompanimentMenuItems = []models.MenuItem{
	item("a1", models.CategoryAccompaniment, "Lunch Roll", "Fresh baked roll made in house", "0.50", 190),
	item("a2", models.CategoryAccompaniment, "Mixed Berries", "Strawberries, blueberries, raspberries, and huckleberries", "1.00", 70),
	item("a3", models.CategoryAccompaniment, "Pickled Veggies", "Pickled cucumbers and carrots, made in house", "0.50", 63),
}

func menuFor(category string) ([]models.MenuItem, bool) {
	switch category {
	case models.CategoryEntree:
		return EntreeMenuItems, true
	case models.CategorySideDish:
		return SideDishMenuItems, true
	case models.CategoryAccompaniment:
		return AccompanimentMenuItems, true
	}
	return nil, false
}

// ListMenuByCategory returns a copy of the fixed option list for a category.
func ListMenuByCategory(category string) ([]models.MenuItem, error) {
	items, ok := menuFor(category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out, nil
}

func GetMenuItem(id string) (*models.MenuItem, error) {
	for _, items := range [][]models.MenuItem{EntreeMenuItems, SideDishMenuItems, AccompanimentMenuItems} {
		for _, it := range items {
			if it.ID == id {
				found := it
				return &found, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
}
