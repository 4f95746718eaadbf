// Package categorydisplay turns stored categories into the name, icon and
// color shown to users, repairing text that was stored with a broken
// encoding.
package categorydisplay

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	FallbackName  = "Categoria"
	FallbackIcon  = "•"
	FallbackColor = "#6b7280"
)

// Info is the display information for a category.
type Info struct {
	Name  string `json:"name" example:"Alimentação"` // Display name
	Icon  string `json:"icon" example:"🍔"`           // Display icon
	Color string `json:"color" example:"#ef4444"`    // Display color as hex code
}

// Category is the subset of a stored category needed for display.
type Category struct {
	Name      string
	Icon      string
	Color     string
	IsDefault bool
}

// Uncategorized is shown for transactions without a category.
var Uncategorized = Info{Name: "Sem categoria", Icon: FallbackIcon, Color: FallbackColor}

var defaults = map[string]Info{
	"alimentacao":  {Name: "Alimentação", Icon: "🍔", Color: "#ef4444"},
	"transporte":   {Name: "Transporte", Icon: "🚗", Color: "#f59e0b"},
	"moradia":      {Name: "Moradia", Icon: "🏠", Color: "#8b5cf6"},
	"saude":        {Name: "Saúde", Icon: "💊", Color: "#ec4899"},
	"educacao":     {Name: "Educação", Icon: "📚", Color: "#3b82f6"},
	"lazer":        {Name: "Lazer", Icon: "🎮", Color: "#10b981"},
	"compras":      {Name: "Compras", Icon: "🛍️", Color: "#f97316"},
	"outros":       {Name: "Outros", Icon: "📦", Color: "#6b7280"},
	"salario":      {Name: "Salário", Icon: "💼", Color: "#0ea5e9"},
	"investimento": {Name: "Investimento", Icon: "📈", Color: "#22c55e"},
}

// aliases maps keys of names that lost their accented characters
// to the key of the default category
var aliases = map[string]string{
	"alimentao":    "alimentacao",
	"alimentacaoo": "alimentacao",
	"sade":         "saude",
	"educao":       "educacao",
	"salrio":       "salario",
}

var brokenEncoding = regexp.MustCompile("[ÃÂðŸ�]")

// Display returns the display information for a category. A nil
// category is displayed as Uncategorized.
func Display(category *Category) Info {
	if category == nil {
		return Uncategorized
	}

	name := category.Name
	if needsFix(name) {
		name = repair(name)
	}

	if category.IsDefault {
		if info, ok := defaults[key(name)]; ok {
			return info
		}
	}

	icon := category.Icon
	if needsFix(icon) {
		icon = repair(icon)
	}

	info := Info{
		Name:  strings.TrimSpace(name),
		Icon:  strings.TrimSpace(icon),
		Color: category.Color,
	}

	if info.Name == "" {
		info.Name = FallbackName
	}

	if info.Icon == "" {
		info.Icon = FallbackIcon
	}

	if info.Color == "" {
		info.Color = FallbackColor
	}

	return info
}

// Key returns the normalized lookup key for a category name: accents and
// everything that is not a letter or digit are removed, the rest is
// lower-cased. Known misspellings resolve to the key of the default.
func Key(name string) string {
	return key(name)
}

func key(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	for _, r := range stripped {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	k := b.String()
	if alias, ok := aliases[k]; ok {
		return alias
	}
	return k
}

func needsFix(s string) bool {
	return brokenEncoding.MatchString(s) || strings.Contains(s, "??")
}

// repair reinterprets text that was decoded as Windows-1252 while it
// actually was UTF-8. Replacement characters and "??" left over after
// that are removed.
func repair(s string) string {
	raw := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			raw = append(raw, byte(r))
			continue
		}

		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return sanitize(s)
		}
		raw = append(raw, b)
	}

	if !utf8.Valid(raw) {
		return sanitize(s)
	}

	return sanitize(string(raw))
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "�", "")
	s = strings.ReplaceAll(s, "??", "")
	return strings.TrimSpace(s)
}
