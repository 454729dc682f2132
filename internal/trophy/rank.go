// Package trophy scores raw account statistics into ranked trophies. It is
// pure: the same bundle always yields the same trophies.
package trophy

// Rank is a tier label, strongest first in rankOrder. RankUnknown marks a
// trophy whose lowest threshold has not been met.
type Rank string

const (
	RankSecret  Rank = "SECRET"
	RankSSS     Rank = "SSS"
	RankSS      Rank = "SS"
	RankS       Rank = "S"
	RankAAA     Rank = "AAA"
	RankAA      Rank = "AA"
	RankA       Rank = "A"
	RankB       Rank = "B"
	RankC       Rank = "C"
	RankUnknown Rank = "?"
)

var rankOrder = []Rank{
	RankSecret, RankSSS, RankSS, RankS,
	RankAAA, RankAA, RankA,
	RankB, RankC, RankUnknown,
}

// Index returns the rank's position in the strongest-first ordering. Unknown
// ranks sort last.
func (r Rank) Index() int {
	for i, candidate := range rankOrder {
		if candidate == r {
			return i
		}
	}
	return len(rankOrder) - 1
}

// Letter returns the single letter drawn inside the trophy icon.
func (r Rank) Letter() string {
	switch r {
	case RankUnknown:
		return "?"
	case RankSecret, RankSSS, RankSS, RankS:
		return "S"
	case RankAAA, RankAA, RankA:
		return "A"
	case RankB:
		return "B"
	default:
		return "C"
	}
}
