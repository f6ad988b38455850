package ui

import (
	"fmt"
	"strings"
)

// ParseCSS parses a primitive CSS file: ".class" or "#id" selectors (comma lists allowed)
// followed by a block of "key: value;" declarations. No combinators, no @rules; blocks with
// other selectors are skipped. Later rules override earlier ones for the same selector.
// An unterminated block is an error.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			if strings.TrimSpace(rest) != "" && strings.ContainsRune(rest, '}') {
				return sheet, fmt.Errorf("css: unexpected '}'")
			}
			return sheet, nil
		}
		close := findMatchingBrace(rest, open)
		if close == -1 {
			return sheet, fmt.Errorf("css: unterminated block after %q", strings.TrimSpace(rest[:open]))
		}
		props := parseDeclarations(rest[open+1 : close])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		rest = rest[close+1:]
	}
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		props[k] = strings.TrimSpace(v)
	}
	return props
}
