package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"lunch-tray/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSelectionRequired = errors.New("make a selection first")
	ErrWrongCategory     = errors.New("item does not belong to this menu")
	ErrInvalidTransition = errors.New("action not available on this screen")
)

type EventKind int

const (
	EventStartOrder EventKind = iota + 1
	EventSelect
	EventNext
	EventCancel
	EventBack
)

// Event is one user action. ItemID is set only for EventSelect.
type Event struct {
	Kind   EventKind
	ItemID string
}

// Flow wires a Navigator to an OrderController and applies the wizard transitions.
type Flow struct {
	mu    sync.Mutex
	nav   *Navigator
	order *OrderController

	now   func() time.Time
	newID func() string
}

func NewFlow(taxRate decimal.Decimal) *Flow {
	return &Flow{
		nav:   NewNavigator(),
		order: NewOrderController(taxRate),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

func (f *Flow) Current() Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nav.Current()
}

func (f *Flow) CanNavigateBack() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nav.CanNavigateBack()
}

func (f *Flow) BackStack() []Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nav.Entries()
}

func (f *Flow) Order() models.OrderState {
	return f.order.State()
}

// FlowSnapshot is the screen, back affordance and order read together.
type FlowSnapshot struct {
	Screen          Screen
	CanNavigateBack bool
	Order           models.OrderState
}

func (f *Flow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlowSnapshot{
		Screen:          f.nav.Current(),
		CanNavigateBack: f.nav.CanNavigateBack(),
		Order:           f.order.State(),
	}
}

// Dispatch applies ev to the current screen. A receipt is returned only when checkout is submitted.
func (f *Flow) Dispatch(ev Event) (*models.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dispatch(f.nav.Current(), ev)
}

// DispatchOn applies ev only if on is still the current screen.
// Actions from an outdated screen return ErrInvalidTransition.
func (f *Flow) DispatchOn(on Screen, ev Event) (*models.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur := f.nav.Current()
	if on != cur {
		return nil, fmt.Errorf("%w: action from %s on %s", ErrInvalidTransition, on, cur)
	}
	return f.dispatch(cur, ev)
}

func (f *Flow) dispatch(cur Screen, ev Event) (*models.Receipt, error) {
	switch ev.Kind {
	case EventStartOrder:
		if cur != ScreenStart {
			return nil, fmt.Errorf("%w: start order on %s", ErrInvalidTransition, cur)
		}
		f.nav.Navigate(ScreenEntreeMenu)
		return nil, nil

	case EventSelect:
		return nil, f.selectItem(cur, ev.ItemID)

	case EventNext:
		return f.next(cur)

	case EventCancel:
		if cur == ScreenStart {
			return nil, fmt.Errorf("%w: cancel on %s", ErrInvalidTransition, cur)
		}
		f.resetToStart()
		return nil, nil

	case EventBack:
		if !f.nav.NavigateUp() {
			return nil, fmt.Errorf("%w: back on %s", ErrInvalidTransition, cur)
		}
		return nil, nil
	}
	return nil, fmt.Errorf("%w: event %d", ErrInvalidTransition, ev.Kind)
}

func (f *Flow) selectItem(cur Screen, itemID string) error {
	category := cur.Category()
	if category == "" {
		return fmt.Errorf("%w: select on %s", ErrInvalidTransition, cur)
	}
	it, err := GetMenuItem(itemID)
	if err != nil {
		return err
	}
	if it.Category != category {
		return fmt.Errorf("%w: %s on %s", ErrWrongCategory, it.ID, cur)
	}
	switch category {
	case models.CategoryEntree:
		f.order.UpdateEntree(*it)
	case models.CategorySideDish:
		f.order.UpdateSideDish(*it)
	case models.CategoryAccompaniment:
		f.order.UpdateAccompaniment(*it)
	}
	return nil
}

func (f *Flow) next(cur Screen) (*models.Receipt, error) {
	switch cur {
	case ScreenEntreeMenu, ScreenSideDishMenu, ScreenAccompanimentMenu:
		if f.order.State().Selection(cur.Category()) == nil {
			return nil, ErrSelectionRequired
		}
		f.nav.Navigate(cur + 1)
		return nil, nil
	case ScreenCheckout:
		receipt := &models.Receipt{
			ID:          f.newID(),
			Order:       f.order.State(),
			SubmittedAt: f.now(),
		}
		f.resetToStart()
		return receipt, nil
	}
	return nil, fmt.Errorf("%w: next on %s", ErrInvalidTransition, cur)
}

// resetToStart pairs the order reset with the pop to Start; callers never do one without the other.
func (f *Flow) resetToStart() {
	f.order.ResetOrder()
	if !f.nav.PopBackStack(ScreenStart, false) {
		panic(fmt.Sprintf("%v: start destination missing from back stack", ErrUnknownScreen))
	}
}
