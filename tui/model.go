package tui

import (
	"strings"

	"lunch-tray/lang"
	"lunch-tray/services"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model is the terminal shell over one Flow.
type Model struct {
	flow   *services.Flow
	lang   string
	log    *zap.Logger
	cursor int
	status string
	done   bool
}

func New(flow *services.Flow, langCode string, logger *zap.Logger) Model {
	return Model{flow: flow, lang: langCode, log: logger}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.buttons())-1 {
			m.cursor++
		}
	case "enter", " ":
		btns := m.buttons()
		if m.cursor < len(btns) {
			m = m.apply(btns[m.cursor].Action)
		}
	case "n":
		m = m.apply(services.EncodeAction(m.flow.Current(), services.Event{Kind: services.EventNext}))
	case "c":
		m = m.apply(services.EncodeAction(m.flow.Current(), services.Event{Kind: services.EventCancel}))
	case "b", "esc":
		m = m.apply(services.EncodeAction(m.flow.Current(), services.Event{Kind: services.EventBack}))
	}
	return m, nil
}

func (m Model) apply(action string) Model {
	on, ev, err := services.DecodeAction(action)
	if err != nil {
		m.status = lang.T(m.lang, "unavailable")
		return m
	}
	before := m.flow.Current()
	receipt, err := m.flow.DispatchOn(on, ev)
	if err != nil {
		m.log.Debug("rejected action", zap.String("action", action), zap.Error(err))
		m.status = lang.T(m.lang, services.EventErrorKey(err))
		return m
	}
	m.status = ""
	if receipt != nil {
		m.log.Info("order submitted", zap.String("order_id", receipt.ID))
		m.status = lang.T(m.lang, "receipt", receipt.Number(), services.FormatPrice(receipt.Order.OrderTotal))
	}
	if m.flow.Current() != before {
		m.cursor = 0
	}
	return m
}

func (m Model) buttons() []services.ScreenButton {
	var out []services.ScreenButton
	for _, row := range services.BuildScreen(m.flow, m.lang).Buttons {
		out = append(out, row...)
	}
	return out
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	c := services.BuildScreen(m.flow, m.lang)
	var sb strings.Builder
	if c.CanNavigateBack {
		sb.WriteString("← ")
	}
	sb.WriteString(c.Title + "\n\n" + c.Text + "\n\n")
	i := 0
	for _, row := range c.Buttons {
		for _, btn := range row {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			sb.WriteString(cursor + "[" + btn.Text + "]\n")
			i++
		}
	}
	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}
	sb.WriteString("\n↑/↓ move • enter choose • n next • c cancel • b back • q quit\n")
	return sb.String()
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(flow *services.Flow, langCode string, logger *zap.Logger) error {
	_, err := tea.NewProgram(New(flow, langCode, logger)).Run()
	return err
}
