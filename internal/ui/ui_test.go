package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* panel */
.panel, #main { background: #333; width: 200px }
div { color: #fff; }
.fill { background: #2cc9ff; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".panel", sheet.Rules[0].Selector)
	assert.Equal(t, "#main", sheet.Rules[1].Selector)
	assert.Equal(t, "200px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "#2cc9ff", sheet.Rules[2].Props["background"])
}

func TestParseCSSUnterminated(t *testing.T) {
	_, err := ParseCSS(".panel { width: 10px;")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, ok := ParseHexColor("#fff")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	c, ok = ParseHexColor("#2cc9ff")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x2c, 0xc9, 0xff, 255}, c)

	c, ok = ParseHexColor("#10203040")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)

	for _, bad := range []string{"", "fff", "#ff", "#zzzzzz", "#12345"} {
		_, ok = ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"background": "#000",
		"border":     "#444",
		"width":      "300px",
		"left":       "100%",
		"top":        "12",
		"font-size":  "18px",
	})
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, s.Background)
	assert.True(t, s.HasBorder)
	assert.Equal(t, int32(300), s.Width)
	assert.Equal(t, int32(100), s.LeftPct)
	assert.Equal(t, int32(12), s.Top)
	assert.Equal(t, int32(-1), s.TopPct)
	assert.Equal(t, int32(18), s.FontSize)
	assert.Equal(t, int32(4), s.Padding)
}

func TestDefaultTheme(t *testing.T) {
	th := NewTheme(nil)
	assert.Equal(t, int32(300), th.Panel.Width)
	assert.Equal(t, int32(100), th.Panel.LeftPct)
	assert.Equal(t, color.RGBA{0x2c, 0xc9, 0xff, 255}, th.Fill.Background)
	assert.Equal(t, int32(26), th.ButtonHover.Height, "hover inherits from .button")
	assert.Equal(t, color.RGBA{0x3c, 0x3c, 0x3c, 255}, th.ButtonHover.Background)
}

func TestLoadThemeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.css")
	require.NoError(t, os.WriteFile(path, []byte(".fill { background: #ff0000; }"), 0644))

	th, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, th.Fill.Background)
	assert.Equal(t, int32(300), th.Panel.Width)

	th, err = LoadTheme(filepath.Join(t.TempDir(), "missing.css"))
	require.NoError(t, err)
	assert.Equal(t, NewTheme(nil), th)
}
