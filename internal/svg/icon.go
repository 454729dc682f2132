package svg

import (
	"fmt"
	"strings"

	"github.com/trophycase/trophycase/internal/theme"
	"github.com/trophycase/trophycase/internal/trophy"
)

// trophyGlyph is the cup outline shared by every rank icon.
const trophyGlyph = `<path d="M7 10h2v4H7v-4z"/>` +
	`<path d="M10 11c0 .552-.895 1-2 1s-2-.448-2-1 .895-1 2-1 2 .448 2 1z"/>` +
	`<path fill-rule="evenodd" d="M12.5 3a2 2 0 1 0 0 4 2 2 0 0 0 0-4zm-3 2a3 3 0 1 1 6 0 3 3 0 0 1-6 0zm-6-2a2 2 0 1 0 0 4 2 2 0 0 0 0-4zm-3 2a3 3 0 1 1 6 0 3 3 0 0 1-6 0z"/>` +
	`<path d="M3 1h10c-.495 3.467-.5 10-5 10S3.495 4.467 3 1zm0 15a1 1 0 0 1 1-1h8a1 1 0 0 1 1 1H3zm2-1a1 1 0 0 1 1-1h4a1 1 0 0 1 1 1H5z"/>`

// laurelGlyph frames S and A rank trophies. The placeholder is substituted
// with the theme's laurel color.
const laurelGlyph = `<svg x="5" y="25" width="100" height="100" viewBox="0 0 36 36" xmlns="http://www.w3.org/2000/svg">` +
	`<path fill="__LAUREL__" d="M8 4c-3 4-5 10-3 16 1.6 4.6 5 8 9 10l1-2c-3.4-1.8-6.2-4.6-7.5-8.4C6 14.6 7 9 9.5 5.5L8 4z"/>` +
	`<path fill="__LAUREL__" d="M28 4c3 4 5 10 3 16-1.6 4.6-5 8-9 10l-1-2c3.4-1.8 6.2-4.6 7.5-8.4C30 14.6 29 9 26.5 5.5L28 4z"/>` +
	`</svg>`

// renderIcon draws the rank icon block: optional laurel, duplicated small
// cups for multi-letter ranks, the gradient definition and the central cup
// with the rank letter.
func renderIcon(w *strings.Builder, t trophy.Trophy, th theme.Theme) {
	color := th.DefaultRankBase
	rankColor := th.DefaultRankText
	gradient := gradientStops(th.DefaultRankBase, th.DefaultRankBase, th.DefaultRankBase, "50%")
	laurel := false

	switch {
	case t.Rank == trophy.RankSecret:
		rankColor = th.SecretRankText
		gradient = gradientStops(th.SecretRank1, th.SecretRank2, th.SecretRank3, "50%")
	case t.Rank.Letter() == "S":
		color = th.SRankBase
		rankColor = th.SRankText
		gradient = gradientStops(th.SRankBase, th.SRankBase, th.SRankShadow, "70%")
		laurel = true
	case t.Rank.Letter() == "A":
		color = th.ARankBase
		rankColor = th.ARankText
		gradient = gradientStops(th.ARankBase, th.ARankBase, th.ARankShadow, "70%")
		laurel = true
	case t.Rank == trophy.RankB:
		color = th.BRankBase
		rankColor = th.BRankText
		gradient = gradientStops(th.BRankBase, th.BRankBase, th.BRankShadow, "70%")
	}

	if laurel {
		w.WriteString(strings.ReplaceAll(laurelGlyph, "__LAUREL__", th.Laurel))
	}

	icon := fmt.Sprintf(
		`%s<circle cx="8" cy="6" r="4" fill="%s"/>`+
			`<text x="6" y="8" font-family="Courier, Monospace" font-size="7" fill="%s">%s</text>`,
		trophyGlyph, th.IconCircle, rankColor, t.Rank.Letter(),
	)

	renderSmallIcons(w, icon, color, len(string(t.Rank))-1)

	gradientID := string(t.Rank)
	fmt.Fprintf(w,
		`<defs><linearGradient id="%s" gradientTransform="rotate(45)">%s</linearGradient></defs>`,
		gradientID, gradient,
	)
	fmt.Fprintf(w,
		`<svg x="28" y="20" width="100" height="100" viewBox="0 0 30 30" fill="url(#%s)" xmlns="http://www.w3.org/2000/svg">%s</svg>`,
		gradientID, icon,
	)
}

// renderSmallIcons echoes the cup beside the main icon for SS/SSS/AA/AAA
// ranks: one extra cup for double letters, two for triple.
func renderSmallIcons(w *strings.Builder, icon, color string, count int) {
	const leftX, rightX = 7, 68

	small := func(x int) {
		fmt.Fprintf(w,
			`<svg x="%d" y="35" width="65" height="65" viewBox="0 0 30 30" fill="%s" xmlns="http://www.w3.org/2000/svg">%s</svg>`,
			x, color, icon,
		)
	}

	switch count {
	case 1:
		small(rightX)
	case 2:
		small(leftX)
		small(rightX)
	}
}

func gradientStops(from, mid, to, midOffset string) string {
	return fmt.Sprintf(
		`<stop offset="0%%" stop-color="%s"/><stop offset="%s" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`,
		from, midOffset, mid, to,
	)
}
