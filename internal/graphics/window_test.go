package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseFreesResourcesBeforeWindow(t *testing.T) {
	var calls []string
	orig := closeWindow
	closeWindow = func() { calls = append(calls, "window") }
	t.Cleanup(func() { closeWindow = orig })

	w := &Window{}
	w.OnClose(func() { calls = append(calls, "primitives") })
	w.OnClose(func() { calls = append(calls, "renderer") })
	w.Close()
	w.Close()

	assert.Equal(t, []string{"renderer", "primitives", "window"}, calls)
}
