// Package theme holds the static color catalog. Themes are loaded at startup
// and shared read-only by all requests.
package theme

import "sort"

// Theme is one named color table consumed by the SVG renderer.
type Theme struct {
	Name string

	Background string
	Title      string
	Text       string

	NextRankBar string

	DefaultRankBase string
	DefaultRankText string

	SecretRankText string
	SecretRank1    string
	SecretRank2    string
	SecretRank3    string

	SRankBase   string
	SRankText   string
	SRankShadow string

	ARankBase   string
	ARankText   string
	ARankShadow string

	BRankBase   string
	BRankText   string
	BRankShadow string

	Laurel     string
	IconCircle string
}

// DefaultName is the theme used when no theme parameter is supplied.
const DefaultName = "default"

var themes = map[string]Theme{
	"default": {
		Name:            "default",
		Background:      "#fff",
		Title:           "#000",
		Text:            "#333",
		NextRankBar:     "#42c84f",
		DefaultRankBase: "#777",
		DefaultRankText: "#fff",
		SecretRankText:  "#fff",
		SecretRank1:     "#ff1744",
		SecretRank2:     "#e040fb",
		SecretRank3:     "#00b0ff",
		SRankBase:       "#ffd700",
		SRankText:       "#886200",
		SRankShadow:     "#b88a00",
		ARankBase:       "#c0c0c0",
		ARankText:       "#555",
		ARankShadow:     "#888",
		BRankBase:       "#cd7f32",
		BRankText:       "#613b11",
		BRankShadow:     "#8b5a22",
		Laurel:          "#009366",
		IconCircle:      "#fff",
	},
	"flat": {
		Name:            "flat",
		Background:      "#e8f0f7",
		Title:           "#2c3e50",
		Text:            "#34495e",
		NextRankBar:     "#27ae60",
		DefaultRankBase: "#7f8c8d",
		DefaultRankText: "#ecf0f1",
		SecretRankText:  "#ecf0f1",
		SecretRank1:     "#e74c3c",
		SecretRank2:     "#9b59b6",
		SecretRank3:     "#3498db",
		SRankBase:       "#f1c40f",
		SRankText:       "#7d6608",
		SRankShadow:     "#b7950b",
		ARankBase:       "#bdc3c7",
		ARankText:       "#515a5a",
		ARankShadow:     "#85929e",
		BRankBase:       "#d35400",
		BRankText:       "#6e2c00",
		BRankShadow:     "#a04000",
		Laurel:          "#16a085",
		IconCircle:      "#ecf0f1",
	},
	"onedark": {
		Name:            "onedark",
		Background:      "#282c34",
		Title:           "#e5c07b",
		Text:            "#abb2bf",
		NextRankBar:     "#98c379",
		DefaultRankBase: "#5c6370",
		DefaultRankText: "#282c34",
		SecretRankText:  "#282c34",
		SecretRank1:     "#e06c75",
		SecretRank2:     "#c678dd",
		SecretRank3:     "#61afef",
		SRankBase:       "#e5c07b",
		SRankText:       "#282c34",
		SRankShadow:     "#a8883f",
		ARankBase:       "#abb2bf",
		ARankText:       "#282c34",
		ARankShadow:     "#6b7280",
		BRankBase:       "#d19a66",
		BRankText:       "#282c34",
		BRankShadow:     "#8f6a3f",
		Laurel:          "#98c379",
		IconCircle:      "#282c34",
	},
	"gruvbox": {
		Name:            "gruvbox",
		Background:      "#282828",
		Title:           "#fabd2f",
		Text:            "#ebdbb2",
		NextRankBar:     "#b8bb26",
		DefaultRankBase: "#928374",
		DefaultRankText: "#282828",
		SecretRankText:  "#282828",
		SecretRank1:     "#fb4934",
		SecretRank2:     "#d3869b",
		SecretRank3:     "#83a598",
		SRankBase:       "#fabd2f",
		SRankText:       "#282828",
		SRankShadow:     "#b57614",
		ARankBase:       "#a89984",
		ARankText:       "#282828",
		ARankShadow:     "#7c6f64",
		BRankBase:       "#d65d0e",
		BRankText:       "#282828",
		BRankShadow:     "#af3a03",
		Laurel:          "#98971a",
		IconCircle:      "#282828",
	},
	"dracula": {
		Name:            "dracula",
		Background:      "#282a36",
		Title:           "#ff79c6",
		Text:            "#f8f8f2",
		NextRankBar:     "#50fa7b",
		DefaultRankBase: "#6272a4",
		DefaultRankText: "#282a36",
		SecretRankText:  "#282a36",
		SecretRank1:     "#ff5555",
		SecretRank2:     "#bd93f9",
		SecretRank3:     "#8be9fd",
		SRankBase:       "#f1fa8c",
		SRankText:       "#282a36",
		SRankShadow:     "#b8bf55",
		ARankBase:       "#bfc7d5",
		ARankText:       "#282a36",
		ARankShadow:     "#6272a4",
		BRankBase:       "#ffb86c",
		BRankText:       "#282a36",
		BRankShadow:     "#c57f3a",
		Laurel:          "#50fa7b",
		IconCircle:      "#282a36",
	},
	"monokai": {
		Name:            "monokai",
		Background:      "#272822",
		Title:           "#f92672",
		Text:            "#f8f8f2",
		NextRankBar:     "#a6e22e",
		DefaultRankBase: "#75715e",
		DefaultRankText: "#272822",
		SecretRankText:  "#272822",
		SecretRank1:     "#f92672",
		SecretRank2:     "#ae81ff",
		SecretRank3:     "#66d9ef",
		SRankBase:       "#e6db74",
		SRankText:       "#272822",
		SRankShadow:     "#a39a3e",
		ARankBase:       "#c5c6c2",
		ARankText:       "#272822",
		ARankShadow:     "#75715e",
		BRankBase:       "#fd971f",
		BRankText:       "#272822",
		BRankShadow:     "#b86b10",
		Laurel:          "#a6e22e",
		IconCircle:      "#272822",
	},
	"nord": {
		Name:            "nord",
		Background:      "#2e3440",
		Title:           "#88c0d0",
		Text:            "#d8dee9",
		NextRankBar:     "#a3be8c",
		DefaultRankBase: "#4c566a",
		DefaultRankText: "#eceff4",
		SecretRankText:  "#2e3440",
		SecretRank1:     "#bf616a",
		SecretRank2:     "#b48ead",
		SecretRank3:     "#81a1c1",
		SRankBase:       "#ebcb8b",
		SRankText:       "#2e3440",
		SRankShadow:     "#a58a4d",
		ARankBase:       "#d8dee9",
		ARankText:       "#2e3440",
		ARankShadow:     "#7b88a1",
		BRankBase:       "#d08770",
		BRankText:       "#2e3440",
		BRankShadow:     "#96563f",
		Laurel:          "#a3be8c",
		IconCircle:      "#2e3440",
	},
	"tokyonight": {
		Name:            "tokyonight",
		Background:      "#1a1b26",
		Title:           "#7aa2f7",
		Text:            "#a9b1d6",
		NextRankBar:     "#9ece6a",
		DefaultRankBase: "#565f89",
		DefaultRankText: "#1a1b26",
		SecretRankText:  "#1a1b26",
		SecretRank1:     "#f7768e",
		SecretRank2:     "#bb9af7",
		SecretRank3:     "#7dcfff",
		SRankBase:       "#e0af68",
		SRankText:       "#1a1b26",
		SRankShadow:     "#a17c38",
		ARankBase:       "#c0caf5",
		ARankText:       "#1a1b26",
		ARankShadow:     "#565f89",
		BRankBase:       "#ff9e64",
		BRankText:       "#1a1b26",
		BRankShadow:     "#b56a38",
		Laurel:          "#9ece6a",
		IconCircle:      "#1a1b26",
	},
	"radical": {
		Name:            "radical",
		Background:      "#141321",
		Title:           "#fe428e",
		Text:            "#a9fef7",
		NextRankBar:     "#f8d847",
		DefaultRankBase: "#5b5775",
		DefaultRankText: "#141321",
		SecretRankText:  "#141321",
		SecretRank1:     "#fe428e",
		SecretRank2:     "#c678dd",
		SecretRank3:     "#38bdae",
		SRankBase:       "#f8d847",
		SRankText:       "#141321",
		SRankShadow:     "#ad9424",
		ARankBase:       "#a9fef7",
		ARankText:       "#141321",
		ARankShadow:     "#56948f",
		BRankBase:       "#fe428e",
		BRankText:       "#141321",
		BRankShadow:     "#a02a5b",
		Laurel:          "#38bdae",
		IconCircle:      "#141321",
	},
	"matrix": {
		Name:            "matrix",
		Background:      "#000",
		Title:           "#00ff41",
		Text:            "#008f11",
		NextRankBar:     "#00ff41",
		DefaultRankBase: "#003b00",
		DefaultRankText: "#00ff41",
		SecretRankText:  "#000",
		SecretRank1:     "#00ff41",
		SecretRank2:     "#008f11",
		SecretRank3:     "#003b00",
		SRankBase:       "#00ff41",
		SRankText:       "#000",
		SRankShadow:     "#008f11",
		ARankBase:       "#008f11",
		ARankText:       "#000",
		ARankShadow:     "#003b00",
		BRankBase:       "#005f00",
		BRankText:       "#00ff41",
		BRankShadow:     "#003b00",
		Laurel:          "#00ff41",
		IconCircle:      "#000",
	},
}

// Resolve looks up a theme by name. An empty name resolves to the default;
// an unknown name reports false so callers can reject the request.
func Resolve(name string) (Theme, bool) {
	if name == "" {
		name = DefaultName
	}
	t, ok := themes[name]
	return t, ok
}

// Names returns all theme names in sorted order, for the landing page.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
