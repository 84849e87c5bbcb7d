package services

import (
	"sync"

	"lunch-tray/models"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied when the config does not set TAX_RATE.
var DefaultTaxRate = decimal.RequireFromString("0.08")

// CalcTotals returns item total, tax and order total for the given selections.
// Tax is rounded half-up to cents; nil items are skipped.
func CalcTotals(rate decimal.Decimal, items ...*models.MenuItem) (itemTotal, tax, orderTotal decimal.Decimal) {
	itemTotal = decimal.Zero
	for _, it := range items {
		if it != nil {
			itemTotal = itemTotal.Add(it.Price)
		}
	}
	tax = itemTotal.Mul(rate).Round(2)
	return itemTotal, tax, itemTotal.Add(tax)
}

// OrderController owns one OrderState and keeps its totals consistent.
type OrderController struct {
	mu      sync.RWMutex
	taxRate decimal.Decimal
	state   models.OrderState
}

func NewOrderController(taxRate decimal.Decimal) *OrderController {
	c := &OrderController{taxRate: taxRate}
	c.ResetOrder()
	return c
}

func (c *OrderController) TaxRate() decimal.Decimal {
	return c.taxRate
}

// State returns a snapshot; selected items are copied so callers cannot mutate the order.
func (c *OrderController) State() models.OrderState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.Entree = copyItem(s.Entree)
	s.SideDish = copyItem(s.SideDish)
	s.Accompaniment = copyItem(s.Accompaniment)
	return s
}

func (c *OrderController) UpdateEntree(item models.MenuItem) {
	c.update(func(s *models.OrderState) { s.Entree = &item })
}

func (c *OrderController) UpdateSideDish(item models.MenuItem) {
	c.update(func(s *models.OrderState) { s.SideDish = &item })
}

func (c *OrderController) UpdateAccompaniment(item models.MenuItem) {
	c.update(func(s *models.OrderState) { s.Accompaniment = &item })
}

// ResetOrder clears every selection and zeroes the totals.
func (c *OrderController) ResetOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = models.OrderState{
		ItemTotal:  decimal.Zero,
		Tax:        decimal.Zero,
		OrderTotal: decimal.Zero,
	}
}

func (c *OrderController) update(apply func(*models.OrderState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	apply(&c.state)
	c.state.ItemTotal, c.state.Tax, c.state.OrderTotal = CalcTotals(c.taxRate, c.state.Entree, c.state.SideDish, c.state.Accompaniment)
}

func copyItem(it *models.MenuItem) *models.MenuItem {
	if it == nil {
		return nil
	}
	cp := *it
	return &cp
}
