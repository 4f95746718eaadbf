// Package presets contains the color presets offered for cards.
package presets

// Preset is a named combination of card colors.
type Preset struct {
	ID            string `json:"id" example:"nubank"`                                             // Identifier of the preset
	Label         string `json:"label" example:"Nubank Roxo"`                                     // Human readable name
	Bank          string `json:"bank,omitempty" example:"Nubank"`                                 // Bank the colors are modeled after
	GradientStart string `json:"gradientStart" example:"#5f17c5"`                                 // Start color of the card gradient
	GradientEnd   string `json:"gradientEnd" example:"#a854ff"`                                   // End color of the card gradient
	Accent        string `json:"accent" example:"#f4c95d"`                                        // Accent color
	Description   string `json:"description,omitempty" example:"Roxo oficial com brilho dourado"` // Description of the preset
}

var presets = []Preset{
	{ID: "nubank", Label: "Nubank Roxo", Bank: "Nubank", GradientStart: "#5f17c5", GradientEnd: "#a854ff", Accent: "#f4c95d", Description: "Roxo oficial com brilho dourado"},
	{ID: "santander", Label: "Santander Vermelho", Bank: "Santander", GradientStart: "#c7141a", GradientEnd: "#ff4b2b", Accent: "#ffe4d5"},
	{ID: "itau", Label: "Itaú Laranja", Bank: "Itaú", GradientStart: "#f18a00", GradientEnd: "#ffb347", Accent: "#123d8d"},
	{ID: "bb", Label: "Banco do Brasil", Bank: "Banco do Brasil", GradientStart: "#0052a3", GradientEnd: "#00a2ff", Accent: "#ffd200"},
	{ID: "caixa", Label: "Caixa Azul", Bank: "Caixa", GradientStart: "#005aae", GradientEnd: "#0085ff", Accent: "#fdb812"},
	{ID: "bradesco", Label: "Bradesco Ruby", Bank: "Bradesco", GradientStart: "#b00045", GradientEnd: "#ff3d7f", Accent: "#ffdce5"},
	{ID: "inter", Label: "Banco Inter", Bank: "Inter", GradientStart: "#ff6f00", GradientEnd: "#ff944d", Accent: "#fff3e6"},
	{ID: "neon", Label: "Neon Ciano", Bank: "Neon", GradientStart: "#00a4ff", GradientEnd: "#01f7ff", Accent: "#ffffff"},
	{ID: "custom-midnight", Label: "Midnight Wave", GradientStart: "#1f1c2c", GradientEnd: "#928dab", Accent: "#c3aed6", Description: "Gradiente premium roxo"},
	{ID: "custom-carbon", Label: "Carbono Azul", GradientStart: "#0f2027", GradientEnd: "#203a43", Accent: "#64b5f6"},
}

// Fallback is used when no preset is available.
var Fallback = Preset{ID: "default", Label: "Roxo Premium", GradientStart: "#4c1d95", GradientEnd: "#7c3aed", Accent: "#facc15"}

// All returns a copy of all presets.
func All() []Preset {
	p := make([]Preset, len(presets))
	copy(p, presets)
	return p
}

// ByID returns the preset with the given ID.
func ByID(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}

	return Preset{}, false
}

// Default returns the preset applied to cards created without colors.
func Default() Preset {
	if len(presets) == 0 {
		return Fallback
	}
	return presets[0]
}
