package tui

import (
	"strings"
	"testing"

	"lunch-tray/lang"
	"lunch-tray/services"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestWizardToReceipt(t *testing.T) {
	flow := services.NewFlow(services.DefaultTaxRate)
	m := New(flow, lang.En, zap.NewNop())

	// Entree #3 (Mushroom Pasta), side #3 (Spicy Potatoes), accompaniment #2 (Mixed Berries).
	m = feed(m, "enter", "down", "down", "enter", "n")
	require.Equal(t, services.ScreenSideDishMenu, flow.Current())
	m = feed(m, "j", "j", "enter", "n", "j", "enter", "n")
	require.Equal(t, services.ScreenCheckout, flow.Current())
	assert.Contains(t, m.View(), "Total: $9.18")

	m = feed(m, "n")
	assert.Equal(t, services.ScreenStart, flow.Current())
	assert.Contains(t, m.View(), "Total charged: $9.18")
}

func TestBackAndCancelKeys(t *testing.T) {
	flow := services.NewFlow(services.DefaultTaxRate)
	m := New(flow, lang.En, zap.NewNop())
	m = feed(m, "enter", "enter", "n")
	require.Equal(t, services.ScreenSideDishMenu, flow.Current())
	assert.True(t, strings.HasPrefix(m.View(), "← "))

	m = feed(m, "esc")
	assert.Equal(t, services.ScreenEntreeMenu, flow.Current())
	assert.False(t, flow.Order().IsEmpty())

	m = feed(m, "c")
	assert.Equal(t, services.ScreenStart, flow.Current())
	assert.True(t, flow.Order().IsEmpty())
	assert.False(t, strings.HasPrefix(m.View(), "← "))
}

func TestNextWithoutSelectionShowsStatus(t *testing.T) {
	flow := services.NewFlow(services.DefaultTaxRate)
	m := feed(New(flow, lang.En, zap.NewNop()), "enter", "n")
	assert.Equal(t, services.ScreenEntreeMenu, flow.Current())
	assert.Contains(t, m.View(), "Please make a selection first.")
}

func TestCursorBounds(t *testing.T) {
	m := New(services.NewFlow(services.DefaultTaxRate), lang.En, zap.NewNop())
	m = feed(m, "up", "down", "down")
	assert.Equal(t, 0, m.cursor, "start screen has a single button")
}

func TestQuit(t *testing.T) {
	m := New(services.NewFlow(services.DefaultTaxRate), lang.En, zap.NewNop())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
