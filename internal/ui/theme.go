package ui

import (
	"fmt"
	"os"
)

// DefaultCSS styles the debug panel when no stylesheet file is found.
const DefaultCSS = `
.panel        { background: #1a1a1aee; color: #eeeeee; width: 300px; left: 100%; top: 0; padding: 6px; }
.title        { background: #000000; color: #ffffff; height: 24px; font-size: 16px; }
.row          { height: 26px; color: #cccccc; font-size: 14px; }
.track        { background: #303030; width: 100px; }
.fill         { background: #2cc9ff; }
.button       { background: #303030; color: #eeeeee; height: 26px; font-size: 14px; border: #444444; }
.button-hover { background: #3c3c3c; color: #ffffff; }
`

// Theme is the resolved style of each part of the debug panel.
type Theme struct {
	Panel       ComputedStyle
	Title       ComputedStyle
	Row         ComputedStyle
	Track       ComputedStyle
	Fill        ComputedStyle
	Button      ComputedStyle
	ButtonHover ComputedStyle
}

// resolveClass merges the properties of every ".class" rule in order (last wins).
func resolveClass(sheet *Stylesheet, class string) ComputedStyle {
	merged := make(map[string]string)
	if sheet != nil {
		sel := "." + class
		for _, rule := range sheet.Rules {
			if rule.Selector != sel {
				continue
			}
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return ResolveProps(merged)
}

// NewTheme resolves the panel classes from sheet. Rules in sheet are applied on top of DefaultCSS.
func NewTheme(sheet *Stylesheet) Theme {
	base, _ := ParseCSS(DefaultCSS)
	if sheet != nil {
		base.Rules = append(base.Rules, sheet.Rules...)
	}
	t := Theme{
		Panel:  resolveClass(base, "panel"),
		Title:  resolveClass(base, "title"),
		Row:    resolveClass(base, "row"),
		Track:  resolveClass(base, "track"),
		Fill:   resolveClass(base, "fill"),
		Button: resolveClass(base, "button"),
	}
	hover := &Stylesheet{}
	for _, r := range base.Rules {
		if r.Selector == ".button" || r.Selector == ".button-hover" {
			hover.Rules = append(hover.Rules, Rule{Selector: ".button-hover", Props: r.Props})
		}
	}
	t.ButtonHover = resolveClass(hover, "button-hover")
	return t
}

// LoadTheme reads a stylesheet from path and resolves it over DefaultCSS.
// A missing file yields the default theme and no error.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return NewTheme(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTheme(nil), nil
		}
		return NewTheme(nil), fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return NewTheme(nil), fmt.Errorf("ui: %s: %w", path, err)
	}
	return NewTheme(sheet), nil
}
