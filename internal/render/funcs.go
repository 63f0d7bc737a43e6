package render

import (
	"strings"
	"text/template"
)

// funcMap returns the helper functions available inside templates. The
// session helpers operate on the shared per-unit session map injected for
// incremental generators.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"trimSuffix": func(suffix, s string) string { return strings.TrimSuffix(s, suffix) },
		"trimPrefix": func(prefix, s string) string { return strings.TrimPrefix(s, prefix) },
		"replace":    func(old, new, s string) string { return strings.ReplaceAll(s, old, new) },
		"join":       strings.Join,
		"split":      func(sep, s string) []string { return strings.Split(s, sep) },
		"camel":      camelCase,
		"snake":      snakeCase,

		// sessionPut stores a value in the shared session map and renders
		// nothing, so it can be used for side effects mid-template.
		"sessionPut": func(session map[string]any, key string, value any) string {
			session[key] = value
			return ""
		},
		"sessionGet": func(session map[string]any, key string) any {
			return session[key]
		},
		"sessionHas": func(session map[string]any, key string) bool {
			_, ok := session[key]
			return ok
		},
	}
}

// camelCase converts snake_case or kebab-case identifiers to lowerCamelCase.
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(parts[0]))
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(strings.ToLower(p[1:]))
	}
	return sb.String()
}

// snakeCase converts camelCase identifiers to snake_case.
func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
