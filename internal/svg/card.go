// Package svg renders a trophy list into a standalone SVG document. Rendering
// is pure: the same trophies, theme and options always produce the same text.
package svg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trophycase/trophycase/internal/theme"
	"github.com/trophycase/trophycase/internal/trophy"
)

// DefaultPanelSize is the pixel edge of a single trophy panel.
const DefaultPanelSize = 110

// Options control the panel grid layout and frame styling.
type Options struct {
	PanelSize    int
	Columns      int
	MarginWidth  int
	MarginHeight int
	NoBackground bool
	NoFrame      bool
}

// Render produces the SVG trophy case. Columns must be positive; the grid
// height follows from the trophy count.
func Render(trophies []trophy.Trophy, th theme.Theme, opts Options) (string, error) {
	if opts.PanelSize <= 0 {
		opts.PanelSize = DefaultPanelSize
	}
	if opts.Columns <= 0 {
		return "", errors.New("svg: columns must be positive")
	}

	columns := opts.Columns
	rows := (len(trophies)-1)/columns + 1
	if len(trophies) == 0 {
		rows = 1
	}

	width := opts.PanelSize*columns + opts.MarginWidth*(columns-1)
	height := opts.PanelSize*rows + opts.MarginHeight*(rows-1)

	var body strings.Builder
	body.Grow(len(trophies) * 2500)

	for i, t := range trophies {
		col := i % columns
		row := i / columns
		x := (opts.PanelSize + opts.MarginWidth) * col
		y := (opts.PanelSize + opts.MarginHeight) * row

		renderPanel(&body, t, th, x, y, opts)
	}

	return fmt.Sprintf(
		`<svg width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">%s</svg>`,
		width, height, width, height, body.String(),
	), nil
}

func renderPanel(w *strings.Builder, t trophy.Trophy, th theme.Theme, x, y int, opts Options) {
	size := opts.PanelSize

	frameOpacity := "1"
	if opts.NoFrame {
		frameOpacity = "0"
	}
	backgroundOpacity := "1"
	if opts.NoBackground {
		backgroundOpacity = "0"
	}

	fmt.Fprintf(w,
		`<svg x="%d" y="%d" width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		x, y, size, size, size, size,
	)
	fmt.Fprintf(w,
		`<rect x="0.5" y="0.5" rx="4.5" width="%d" height="%d" stroke="#e1e4e8" fill="%s" stroke-opacity="%s" fill-opacity="%s"/>`,
		size-1, size-1, th.Background, frameOpacity, backgroundOpacity,
	)

	renderIcon(w, t, th)

	fontFamily := "Segoe UI,Helvetica,Arial,sans-serif,Apple Color Emoji,Segoe UI Emoji"
	fmt.Fprintf(w,
		`<text x="50%%" y="18" text-anchor="middle" font-family="%s" font-weight="bold" font-size="13" fill="%s">%s</text>`,
		fontFamily, th.Title, escape(t.Title),
	)
	fmt.Fprintf(w,
		`<text x="50%%" y="85" text-anchor="middle" font-family="%s" font-weight="bold" font-size="10.5" fill="%s">%s</text>`,
		fontFamily, th.Text, escape(t.TopMessage),
	)
	fmt.Fprintf(w,
		`<text x="50%%" y="97" text-anchor="middle" font-family="%s" font-weight="bold" font-size="10" fill="%s">%s</text>`,
		fontFamily, th.Text, escape(t.BottomMessage),
	)

	renderProgressBar(w, t.Title, t.NextRankProgress(), th.NextRankBar)

	w.WriteString(`</svg>`)
}

// renderProgressBar draws the animated bar showing progress toward the next
// tier. The animation id is namespaced by title so panels don't collide.
func renderProgressBar(w *strings.Builder, title string, progress float64, color string) {
	const maxWidth = 80.0
	progressWidth := maxWidth * progress

	fmt.Fprintf(w,
		`<style>@keyframes %[1]sRankAnimation { from { width: 0px; } to { width: %[2].1fpx; } }`+
			` #%[1]s-rank-progress { animation: %[1]sRankAnimation 1s forwards ease-in-out; }</style>`,
		title, progressWidth,
	)
	fmt.Fprintf(w,
		`<rect x="15" y="101" rx="1" width="%.0f" height="3.2" opacity="0.3" fill="%s"/>`,
		maxWidth, color,
	)
	fmt.Fprintf(w,
		`<rect id="%s-rank-progress" x="15" y="101" rx="1" height="3.2" fill="%s"/>`,
		title, color,
	)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
