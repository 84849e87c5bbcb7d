package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow() *Flow {
	f := NewFlow(DefaultTaxRate)
	f.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	f.newID = func() string { return "0f8e2c1a-test" }
	return f
}

func dispatch(t *testing.T, f *Flow, events ...Event) {
	t.Helper()
	for _, ev := range events {
		_, err := f.Dispatch(ev)
		require.NoError(t, err, "dispatch %+v on %s", ev, f.Current())
	}
}

var (
	start  = Event{Kind: EventStartOrder}
	next   = Event{Kind: EventNext}
	cancel = Event{Kind: EventCancel}
	back   = Event{Kind: EventBack}
)

func sel(id string) Event { return Event{Kind: EventSelect, ItemID: id} }

func TestFlowHappyPath(t *testing.T) {
	f := newTestFlow()
	dispatch(t, f, start, sel("e3"), next, sel("s3"), next, sel("a2"), next)
	require.Equal(t, ScreenCheckout, f.Current())

	o := f.Order()
	assert.True(t, o.ItemTotal.Equal(price("8.50")))
	assert.True(t, o.Tax.Equal(price("0.68")))
	assert.True(t, o.OrderTotal.Equal(price("9.18")))

	receipt, err := f.Dispatch(next)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "0f8e2c1a-test", receipt.ID)
	assert.True(t, receipt.Order.OrderTotal.Equal(price("9.18")))
	assert.Equal(t, "Mushroom Pasta", receipt.Order.Entree.Name)

	assert.Equal(t, ScreenStart, f.Current())
	assert.Equal(t, []Screen{ScreenStart}, f.BackStack())
	assert.False(t, f.CanNavigateBack())
	assert.True(t, f.Order().IsEmpty())
	assert.True(t, f.Order().OrderTotal.IsZero())
}

func TestCancelResetsFromEveryScreen(t *testing.T) {
	paths := map[Screen][]Event{
		ScreenEntreeMenu:        {start, sel("e1")},
		ScreenSideDishMenu:      {start, sel("e1"), next, sel("s1")},
		ScreenAccompanimentMenu: {start, sel("e1"), next, sel("s1"), next, sel("a1")},
		ScreenCheckout:          {start, sel("e1"), next, sel("s1"), next, sel("a1"), next},
	}
	for screen, path := range paths {
		t.Run(screen.Route(), func(t *testing.T) {
			f := newTestFlow()
			dispatch(t, f, path...)
			require.Equal(t, screen, f.Current())
			require.False(t, f.Order().IsEmpty())

			receipt, err := f.Dispatch(cancel)
			require.NoError(t, err)
			assert.Nil(t, receipt)
			assert.Equal(t, []Screen{ScreenStart}, f.BackStack())
			assert.True(t, f.Order().IsEmpty())
			assert.True(t, f.Order().ItemTotal.IsZero())
		})
	}
}

func TestBackKeepsOrder(t *testing.T) {
	f := newTestFlow()
	dispatch(t, f, start, sel("e2"), next, sel("s4"), next, sel("a3"), next)
	before := f.Order()

	dispatch(t, f, back)
	assert.Equal(t, ScreenAccompanimentMenu, f.Current())
	dispatch(t, f, back, back)
	assert.Equal(t, ScreenEntreeMenu, f.Current())

	after := f.Order()
	assert.Equal(t, before.Entree.ID, after.Entree.ID)
	assert.Equal(t, before.SideDish.ID, after.SideDish.ID)
	assert.Equal(t, before.Accompaniment.ID, after.Accompaniment.ID)
	assert.True(t, before.OrderTotal.Equal(after.OrderTotal))

	dispatch(t, f, back)
	assert.Equal(t, ScreenStart, f.Current())
	assert.False(t, f.Order().IsEmpty())
}

func TestNextRequiresSelection(t *testing.T) {
	f := newTestFlow()
	dispatch(t, f, start)
	_, err := f.Dispatch(next)
	assert.ErrorIs(t, err, ErrSelectionRequired)
	assert.Equal(t, ScreenEntreeMenu, f.Current())
}

func TestSelectValidation(t *testing.T) {
	f := newTestFlow()
	dispatch(t, f, start)

	_, err := f.Dispatch(sel("s1"))
	assert.ErrorIs(t, err, ErrWrongCategory)
	_, err = f.Dispatch(sel("zz"))
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.True(t, f.Order().IsEmpty())
}

func TestInvalidTransitions(t *testing.T) {
	f := newTestFlow()
	for _, ev := range []Event{next, cancel, back, sel("e1"), {Kind: EventKind(99)}} {
		_, err := f.Dispatch(ev)
		assert.ErrorIs(t, err, ErrInvalidTransition, "event %+v on Start", ev)
	}
	dispatch(t, f, start)
	_, err := f.Dispatch(start)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDispatchOnRejectsOutdatedScreen(t *testing.T) {
	f := newTestFlow()
	dispatch(t, f, start, sel("e1"), next, sel("s1"), next, sel("a1"), next)
	require.Equal(t, ScreenCheckout, f.Current())

	receipt, err := f.DispatchOn(ScreenEntreeMenu, next)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, receipt)
	assert.Equal(t, ScreenCheckout, f.Current())
	assert.False(t, f.Order().IsEmpty())

	receipt, err = f.DispatchOn(ScreenCheckout, next)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, ScreenStart, f.Current())
}

func TestSnapshot(t *testing.T) {
	f := newTestFlow()
	snap := f.Snapshot()
	assert.Equal(t, ScreenStart, snap.Screen)
	assert.False(t, snap.CanNavigateBack)
	assert.True(t, snap.Order.IsEmpty())

	dispatch(t, f, start, sel("e4"))
	snap = f.Snapshot()
	assert.Equal(t, ScreenEntreeMenu, snap.Screen)
	assert.True(t, snap.CanNavigateBack)
	require.NotNil(t, snap.Order.Entree)
	assert.Equal(t, "e4", snap.Order.Entree.ID)
	assert.True(t, snap.Order.ItemTotal.Equal(price("5.50")))
}
