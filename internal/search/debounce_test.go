package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	mu  sync.Mutex
	got []string
}

func (c *collector) add(s string) {
	c.mu.Lock()
	c.got = append(c.got, s)
	c.mu.Unlock()
}

func (c *collector) values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.got...)
}

func TestDebouncer_DeliversOnlyLastValue(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(20*time.Millisecond, c.add)

	d.Push("t")
	d.Push("te")
	d.Push("tee")

	assert.Eventually(t, func() bool { return len(c.values()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"tee"}, c.values())
}

func TestDebouncer_Cancel(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(10*time.Millisecond, c.add)

	d.Push("shirt")
	d.Cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.values())
}

func TestStats_TopAndRecorder(t *testing.T) {
	s := NewStats()
	s.Record("Shirt ")
	s.Record("shirt")
	s.Record("pants")
	s.Record("  ")
	s.Record("beach")

	assert.Equal(t, []QueryCount{{Query: "shirt", Count: 2}, {Query: "beach", Count: 1}}, s.Top(2))
	assert.Len(t, s.Top(0), 3)

	r := NewRecorder(s, 10*time.Millisecond)
	r.Observe("sess", "p")
	r.Observe("sess", "pa")
	r.Observe("sess", "pants")
	assert.Eventually(t, func() bool { return s.Top(1)[0].Query == "pants" && s.Top(1)[0].Count == 2 },
		time.Second, 5*time.Millisecond)
	assert.Len(t, s.Top(0), 3)
}

func TestDebouncer_PendingClearsAfterFire(t *testing.T) {
	c := &collector{}
	d := NewDebouncer(10*time.Millisecond, c.add)
	assert.False(t, d.Pending())

	d.Push("tee")
	assert.True(t, d.Pending())
	assert.Eventually(t, func() bool { return !d.Pending() && len(c.values()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestRecorder_ForgetsSettledSessions(t *testing.T) {
	s := NewStats()
	r := NewRecorder(s, 10*time.Millisecond)

	r.Observe("a", "tee")
	r.Observe("b", "abc")
	r.Observe("c", "xyz")
	assert.Equal(t, 3, r.Len())

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []QueryCount{{"abc", 1}, {"tee", 1}, {"xyz", 1}}, s.Top(0))
}
