package services

import (
	"errors"
	"fmt"

	"lunch-tray/models"
)

var ErrUnknownScreen = errors.New("unknown screen")

type Screen int

const (
	ScreenStart Screen = iota
	ScreenEntreeMenu
	ScreenSideDishMenu
	ScreenAccompanimentMenu
	ScreenCheckout
)

var screenRoutes = [...]string{
	ScreenStart:             "Start",
	ScreenEntreeMenu:        "Entree_menu",
	ScreenSideDishMenu:      "Side_dish_menu",
	ScreenAccompanimentMenu: "Accompaniment_menu",
	ScreenCheckout:          "Checkout",
}

var screenTitles = [...]string{
	ScreenStart:             "title_start_order",
	ScreenEntreeMenu:        "title_choose_entree",
	ScreenSideDishMenu:      "title_choose_side_dish",
	ScreenAccompanimentMenu: "title_choose_accompaniment",
	ScreenCheckout:          "title_order_checkout",
}

func (s Screen) valid() bool {
	return s >= ScreenStart && s <= ScreenCheckout
}

// Route is the screen's graph name.
func (s Screen) Route() string {
	if !s.valid() {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenRoutes[s]
}

func (s Screen) String() string { return s.Route() }

// TitleKey is the lang key of the app bar title.
func (s Screen) TitleKey() string {
	if !s.valid() {
		panic(fmt.Sprintf("%v: %d", ErrUnknownScreen, int(s)))
	}
	return screenTitles[s]
}

// Category returns the menu category a screen selects from, or "" for Start and Checkout.
func (s Screen) Category() string {
	switch s {
	case ScreenEntreeMenu:
		return models.CategoryEntree
	case ScreenSideDishMenu:
		return models.CategorySideDish
	case ScreenAccompanimentMenu:
		return models.CategoryAccompaniment
	}
	return ""
}

func ParseScreen(route string) (Screen, error) {
	for i, r := range screenRoutes {
		if r == route {
			return Screen(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, route)
}

// MustScreen panics on an unknown route: the graph and the caller disagree.
func MustScreen(route string) Screen {
	s, err := ParseScreen(route)
	if err != nil {
		panic(err)
	}
	return s
}

// Navigator is a back stack rooted at the start destination.
type Navigator struct {
	stack []Screen
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Screen{ScreenStart}}
}

func (n *Navigator) Current() Screen {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) CanNavigateBack() bool {
	return len(n.stack) > 1
}

func (n *Navigator) Entries() []Screen {
	out := make([]Screen, len(n.stack))
	copy(out, n.stack)
	return out
}

func (n *Navigator) Navigate(s Screen) {
	if !s.valid() {
		panic(fmt.Sprintf("%v: %d", ErrUnknownScreen, int(s)))
	}
	n.stack = append(n.stack, s)
}

// NavigateUp pops one entry. The start destination is never popped.
func (n *Navigator) NavigateUp() bool {
	if !n.CanNavigateBack() {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// PopBackStack pops entries until s is on top (or removed too, if inclusive).
// It returns false and leaves the stack untouched when s is not on the stack.
// The root entry always stays.
func (n *Navigator) PopBackStack(s Screen, inclusive bool) bool {
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i] != s {
			continue
		}
		end := i + 1
		if inclusive {
			end = i
		}
		if end < 1 {
			end = 1
		}
		n.stack = n.stack[:end]
		return true
	}
	return false
}
