package trophy

import (
	"fmt"
	"sort"
)

// Trophy is one category's computed result: the achieved tier, its display
// messages and the score that earned it.
type Trophy struct {
	Title         string
	FilterTitles  []string
	Rank          Rank
	TopMessage    string
	BottomMessage string
	Score         int64

	// Hidden trophies only appear once achieved.
	Hidden bool

	conditions []Condition
	achieved   *Condition
}

// newTrophy scores against the category's conditions, taking the strongest
// tier whose threshold is met (thresholds are inclusive).
func newTrophy(score int64, title string, filterTitles []string, hidden bool, conditions []Condition, bottomOverride string) Trophy {
	t := Trophy{
		Title:         title,
		FilterTitles:  filterTitles,
		Rank:          RankUnknown,
		TopMessage:    "Unknown",
		BottomMessage: AbridgeScore(score),
		Score:         score,
		Hidden:        hidden,
		conditions:    conditions,
	}

	sorted := make([]Condition, len(conditions))
	copy(sorted, conditions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank.Index() < sorted[j].Rank.Index()
	})

	for i := range sorted {
		if score >= sorted[i].RequiredScore {
			t.Rank = sorted[i].Rank
			t.TopMessage = sorted[i].Message
			t.achieved = &sorted[i]
			break
		}
	}

	if bottomOverride != "" {
		t.BottomMessage = bottomOverride
	}

	return t
}

// Achieved reports whether any tier threshold was met.
func (t Trophy) Achieved() bool {
	return t.Rank != RankUnknown
}

// NextRankProgress returns progress toward the next tier in [0, 1]. Trophies
// at the top tier, or secret trophies with a single tier, report 1.
func (t Trophy) NextRankProgress() float64 {
	if t.Rank == RankUnknown {
		return 0
	}

	index := t.Rank.Index()
	if index == 0 || t.Rank == RankSSS || t.achieved == nil {
		return 1
	}

	next := rankOrder[index-1]
	var nextCondition *Condition
	for i := range t.conditions {
		if t.conditions[i].Rank == next {
			nextCondition = &t.conditions[i]
			break
		}
	}
	if nextCondition == nil {
		return 1
	}

	distance := nextCondition.RequiredScore - t.achieved.RequiredScore
	if distance <= 0 {
		return 1
	}

	progress := float64(t.Score-t.achieved.RequiredScore) / float64(distance)
	return min(max(progress, 0), 1)
}

// AbridgeScore formats a score for the trophy panel, abbreviating thousands.
func AbridgeScore(score int64) string {
	abs := score
	if abs < 0 {
		abs = -abs
	}

	if abs < 1 {
		return "0pt"
	}

	if abs > 999 {
		return fmt.Sprintf("%.1fkpt", float64(score)/1000.0)
	}

	return fmt.Sprintf("%dpt", score)
}
