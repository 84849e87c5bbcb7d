package services

import (
	"errors"
	"fmt"
	"strings"

	"lunch-tray/lang"
	"lunch-tray/models"

	"github.com/shopspring/decimal"
)

var ErrBadAction = errors.New("bad action")

// ScreenButton is one button (text + encoded action).
type ScreenButton struct {
	Text   string
	Action string
}

// ScreenContent is what a shell needs to draw the current step.
type ScreenContent struct {
	Screen          Screen
	Title           string
	Text            string
	Buttons         [][]ScreenButton
	CanNavigateBack bool
}

const (
	actionStart  = "start"
	actionNext   = "next"
	actionCancel = "cancel"
	actionBack   = "back"
	actionSelect = "select:"
)

// EncodeAction turns an event pressed on screen into button/callback data,
// e.g. "Checkout:next" or "Entree_menu:select:e1".
func EncodeAction(on Screen, ev Event) string {
	var verb string
	switch ev.Kind {
	case EventStartOrder:
		verb = actionStart
	case EventNext:
		verb = actionNext
	case EventCancel:
		verb = actionCancel
	case EventBack:
		verb = actionBack
	case EventSelect:
		verb = actionSelect + ev.ItemID
	default:
		return ""
	}
	return on.Route() + ":" + verb
}

// DecodeAction returns the screen an action was pressed on and its event.
func DecodeAction(data string) (Screen, Event, error) {
	route, verb, ok := strings.Cut(data, ":")
	if !ok {
		return 0, Event{}, fmt.Errorf("%w: %q", ErrBadAction, data)
	}
	on, err := ParseScreen(route)
	if err != nil {
		return 0, Event{}, fmt.Errorf("%w: %q: %v", ErrBadAction, data, err)
	}
	switch {
	case verb == actionStart:
		return on, Event{Kind: EventStartOrder}, nil
	case verb == actionNext:
		return on, Event{Kind: EventNext}, nil
	case verb == actionCancel:
		return on, Event{Kind: EventCancel}, nil
	case verb == actionBack:
		return on, Event{Kind: EventBack}, nil
	case strings.HasPrefix(verb, actionSelect):
		id := strings.TrimPrefix(verb, actionSelect)
		if id == "" {
			return 0, Event{}, fmt.Errorf("%w: %q", ErrBadAction, data)
		}
		return on, Event{Kind: EventSelect, ItemID: id}, nil
	}
	return 0, Event{}, fmt.Errorf("%w: %q", ErrBadAction, data)
}

// FormatPrice renders an amount as dollars with two decimals.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// BuildScreen renders the flow's current screen.
func BuildScreen(f *Flow, langCode string) ScreenContent {
	snap := f.Snapshot()
	cur, order := snap.Screen, snap.Order
	c := ScreenContent{
		Screen:          cur,
		Title:           lang.T(langCode, cur.TitleKey()),
		CanNavigateBack: snap.CanNavigateBack,
	}

	switch cur {
	case ScreenStart:
		c.Text = lang.T(langCode, "welcome")
		c.Buttons = [][]ScreenButton{{
			{Text: lang.T(langCode, "start_order"), Action: EncodeAction(cur, Event{Kind: EventStartOrder})},
		}}
	case ScreenEntreeMenu, ScreenSideDishMenu, ScreenAccompanimentMenu:
		c.Text, c.Buttons = buildMenu(cur, order, langCode)
	case ScreenCheckout:
		c.Text = buildSummary(order, langCode)
		c.Buttons = [][]ScreenButton{{
			{Text: lang.T(langCode, "cancel"), Action: EncodeAction(cur, Event{Kind: EventCancel})},
			{Text: lang.T(langCode, "submit"), Action: EncodeAction(cur, Event{Kind: EventNext})},
		}}
	default:
		panic(fmt.Sprintf("%v: %d", ErrUnknownScreen, int(cur)))
	}

	if c.CanNavigateBack {
		c.Buttons = append(c.Buttons, []ScreenButton{
			{Text: lang.T(langCode, "back"), Action: EncodeAction(cur, Event{Kind: EventBack})},
		})
	}
	return c
}

func buildMenu(cur Screen, order models.OrderState, langCode string) (string, [][]ScreenButton) {
	options, err := ListMenuByCategory(cur.Category())
	if err != nil {
		panic(err)
	}
	selected := order.Selection(cur.Category())

	var sb strings.Builder
	sb.WriteString(lang.T(langCode, "choose_option"))
	var rows [][]ScreenButton
	for _, it := range options {
		mark := ""
		if selected != nil && selected.ID == it.ID {
			mark = lang.T(langCode, "selected")
		}
		sb.WriteString("\n\n" + mark + lang.T(langCode, "option_line", it.Name, FormatPrice(it.Price), it.Description, it.Calories))
		rows = append(rows, []ScreenButton{{
			Text:   mark + lang.T(langCode, "item_line", it.Name, FormatPrice(it.Price)),
			Action: EncodeAction(cur, Event{Kind: EventSelect, ItemID: it.ID}),
		}})
	}
	nav := []ScreenButton{{Text: lang.T(langCode, "cancel"), Action: EncodeAction(cur, Event{Kind: EventCancel})}}
	if selected != nil {
		nav = append(nav, ScreenButton{Text: lang.T(langCode, "next"), Action: EncodeAction(cur, Event{Kind: EventNext})})
	}
	return sb.String(), append(rows, nav)
}

func buildSummary(order models.OrderState, langCode string) string {
	var sb strings.Builder
	sb.WriteString(lang.T(langCode, "order_summary") + "\n")
	for _, it := range []*models.MenuItem{order.Entree, order.SideDish, order.Accompaniment} {
		if it != nil {
			sb.WriteString("\n" + lang.T(langCode, "item_line", it.Name, FormatPrice(it.Price)))
		}
	}
	sb.WriteString("\n\n" + lang.T(langCode, "subtotal", FormatPrice(order.ItemTotal)))
	sb.WriteString("\n" + lang.T(langCode, "tax", FormatPrice(order.Tax)))
	sb.WriteString("\n" + lang.T(langCode, "total", FormatPrice(order.OrderTotal)))
	return sb.String()
}

// EventErrorKey maps a flow error to the lang key shown to the user.
func EventErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrSelectionRequired):
		return "need_selection"
	case errors.Is(err, ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, ErrWrongCategory):
		return "wrong_menu"
	default:
		return "unavailable"
	}
}
