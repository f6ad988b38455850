package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type box struct{ w, h int }

func (b *box) Size() (int, int) { return b.w, b.h }

type call struct{ w, h int }

func TestPollDeliversInitialThenChanges(t *testing.T) {
	var calls []call
	o := NewObserver(func(w, h int) { calls = append(calls, call{w, h}) })
	b := &box{1280, 720}
	o.Observe(b)

	assert.True(t, o.Poll())
	assert.False(t, o.Poll())
	assert.Equal(t, []call{{1280, 720}}, calls)

	b.w, b.h = 800, 600
	assert.True(t, o.Poll())
	assert.False(t, o.Poll())
	assert.Equal(t, []call{{1280, 720}, {800, 600}}, calls)
}

func TestEveryChangeDelivered(t *testing.T) {
	n := 0
	o := NewObserver(func(int, int) { n++ })
	b := &box{100, 100}
	o.Observe(b)
	o.Poll()
	for i := 1; i <= 5; i++ {
		b.w = 100 + i
		o.Poll()
	}
	assert.Equal(t, 6, n)
}

func TestUnobservedNeverFires(t *testing.T) {
	n := 0
	o := NewObserver(func(int, int) { n++ })
	assert.False(t, o.Poll())

	b := &box{10, 10}
	o.Observe(b)
	o.Poll()
	o.Disconnect()
	b.w = 20
	assert.False(t, o.Poll())
	assert.Equal(t, 1, n)
}

func TestObserveAgainRenotifies(t *testing.T) {
	n := 0
	o := NewObserver(func(int, int) { n++ })
	b := &box{10, 10}
	o.Observe(b)
	o.Poll()
	o.Observe(b)
	o.Poll()
	assert.Equal(t, 2, n)
}
