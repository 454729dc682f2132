package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/trophycase/trophycase/internal/stats"
)

// Request carries every option that affects the rendered output. Row and
// Column of zero mean unlimited.
type Request struct {
	Username string
	Titles   []string
	Ranks    []string
	Row      int
	Column   int
	Theme    string

	MarginWidth  int
	MarginHeight int
	NoBackground bool
	NoFrame      bool
}

// renderKey builds the render-cache key for a resolved subject. Title and
// rank sets are sorted so option ordering never splits the cache.
func renderKey(subject stats.Subject, req Request) string {
	titles := slices.Clone(req.Titles)
	slices.Sort(titles)
	ranks := slices.Clone(req.Ranks)
	slices.Sort(ranks)

	return fmt.Sprintf("v1:%s|title=%s|rank=%s|row=%d|col=%d|theme=%s|mw=%d|mh=%d|bg=%t|frame=%t",
		subject.Key(),
		strings.Join(titles, ","),
		strings.Join(ranks, ","),
		req.Row, req.Column,
		req.Theme,
		req.MarginWidth, req.MarginHeight,
		req.NoBackground, req.NoFrame,
	)
}
