package trophy

import "github.com/trophycase/trophycase/internal/stats"

// Compute derives the ordered trophy sequence for a bundle. Categories with
// no tier met are omitted; title and rank filters restrict the result while
// preserving catalog order; row and column bound the panel grid, truncating
// to the first row*column trophies. A row or column of zero (or less) means
// unlimited.
func Compute(bundle stats.Bundle, titles, ranks []string, row, column int) List {
	list := Evaluate(bundle).Achieved()

	if len(titles) > 0 {
		list = list.FilterTitles(titles).ExcludeTitles(titles)
	}

	if len(ranks) > 0 {
		list = list.FilterRanks(ranks)
	}

	if row > 0 && column > 0 {
		list = list.Limit(row * column)
	}

	return list
}
