package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func threeResults() []Result {
	return []Result{
		{Product: fixtureProducts()[0]},
		{Product: fixtureProducts()[1]},
		{Product: fixtureProducts()[2]},
	}
}

func TestNavigator_ClampsCursor(t *testing.T) {
	n := NewNavigator()
	n.SetResults("t", threeResults())
	assert.Equal(t, -1, n.Cursor())

	n.Handle(KeyArrowUp)
	assert.Equal(t, -1, n.Cursor())

	for i := 0; i < 5; i++ {
		n.Handle(KeyArrowDown)
	}
	assert.Equal(t, 2, n.Cursor())

	n.Handle(KeyArrowUp)
	assert.Equal(t, 1, n.Cursor())
}

func TestNavigator_Enter(t *testing.T) {
	n := NewNavigator()
	n.SetResults("logo tee", threeResults())

	a, dest := n.Handle(KeyEnter)
	assert.Equal(t, ActionNavigate, a)
	assert.Equal(t, "/search?q=logo+tee", dest)

	n.Handle(KeyArrowDown)
	a, dest = n.Handle(KeyEnter)
	assert.Equal(t, ActionNavigate, a)
	assert.Equal(t, "/product/tshirt-001", dest)
}

func TestNavigator_EnterWithoutQueryDoesNothing(t *testing.T) {
	n := NewNavigator()
	n.SetResults("   ", nil)
	a, dest := n.Handle(KeyEnter)
	assert.Equal(t, ActionNone, a)
	assert.Empty(t, dest)

	n.Handle(KeyArrowDown)
	assert.Equal(t, -1, n.Cursor())
}

func TestNavigator_Escape(t *testing.T) {
	n := NewNavigator()
	a, _ := n.Handle(KeyEscape)
	assert.Equal(t, ActionClose, a)
	assert.Equal(t, "close", a.String())
}

func TestOverlays_SessionsAreIndependent(t *testing.T) {
	o := NewOverlays()
	o.Show("a", QuickResult{Query: "tee", Results: threeResults()})
	o.Show("b", QuickResult{Query: "logo", Results: threeResults()[:1]})

	o.Press("a", KeyArrowDown)
	_, _, cursor := o.Press("a", KeyArrowDown)
	assert.Equal(t, 1, cursor)

	a, dest, cursor := o.Press("b", KeyEnter)
	assert.Equal(t, ActionNavigate, a)
	assert.Equal(t, "/search?q=logo", dest)
	assert.Equal(t, -1, cursor)

	a, dest, _ = o.Press("a", KeyEnter)
	assert.Equal(t, ActionNavigate, a)
	assert.Equal(t, "/product/tshirt-002", dest)
}

func TestOverlays_DropsClosedAndIdle(t *testing.T) {
	o := NewOverlays()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	o.Show("a", QuickResult{Query: "tee", Results: threeResults()})
	o.Show("b", QuickResult{Query: "tee", Results: threeResults()})
	o.Show("c", QuickResult{Query: "tee", Results: threeResults()})
	assert.Equal(t, 3, o.Len())

	a, _, cursor := o.Press("a", KeyEscape)
	assert.Equal(t, ActionClose, a)
	assert.Equal(t, -1, cursor)
	o.Press("b", KeyEnter)
	assert.Equal(t, 1, o.Len())

	// keys for a session with nothing open never create an overlay
	a, dest, _ := o.Press("ghost", KeyEnter)
	assert.Equal(t, ActionNone, a)
	assert.Empty(t, dest)
	assert.Equal(t, 1, o.Len())

	now = now.Add(OverlayIdle + time.Second)
	o.Show("d", QuickResult{Query: "mug"})
	assert.Equal(t, 1, o.Len())
	a, _, _ = o.Press("c", KeyArrowDown)
	assert.Equal(t, ActionNone, a)
	assert.Equal(t, 1, o.Len())
}
