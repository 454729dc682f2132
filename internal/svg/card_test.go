package svg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophycase/trophycase/internal/stats"
	"github.com/trophycase/trophycase/internal/theme"
	"github.com/trophycase/trophycase/internal/trophy"
)

func defaultTheme(t *testing.T) theme.Theme {
	t.Helper()
	th, ok := theme.Resolve("")
	require.True(t, ok)
	return th
}

func sampleTrophies(t *testing.T, n int) []trophy.Trophy {
	t.Helper()
	list := trophy.Evaluate(stats.Bundle{
		TotalStargazers:   250,
		TotalCommits:      1500,
		TotalFollowers:    60,
		TotalIssues:       25,
		TotalPullRequests: 120,
		TotalRepositories: 22,
		TotalReviews:      9,
		DurationDays:      22,
	}).Achieved()
	require.GreaterOrEqual(t, len(list), n)
	return list[:n]
}

func TestRender_Dimensions(t *testing.T) {
	trophies := sampleTrophies(t, 6)

	out, err := Render(trophies, defaultTheme(t), Options{Columns: 3, MarginWidth: 4, MarginHeight: 2})
	require.NoError(t, err)

	// 3 columns x 2 rows of 110px panels plus inter-panel margins.
	width := 110*3 + 4*2
	height := 110*2 + 2*1
	assert.Contains(t, out, fmt.Sprintf(`<svg width="%d" height="%d"`, width, height))
}

func TestRender_SingleRow(t *testing.T) {
	trophies := sampleTrophies(t, 3)

	out, err := Render(trophies, defaultTheme(t), Options{Columns: 8})
	require.NoError(t, err)

	assert.Contains(t, out, fmt.Sprintf(`<svg width="%d" height="%d"`, 110*8, 110))
}

func TestRender_PanelContent(t *testing.T) {
	trophies := sampleTrophies(t, 2)

	out, err := Render(trophies, defaultTheme(t), Options{Columns: 2})
	require.NoError(t, err)

	for _, tr := range trophies {
		assert.Contains(t, out, ">"+tr.Title+"<")
		assert.Contains(t, out, ">"+tr.TopMessage+"<")
		assert.Contains(t, out, ">"+tr.BottomMessage+"<")
		assert.Contains(t, out, tr.Title+"-rank-progress")
	}
}

func TestRender_FrameAndBackgroundToggles(t *testing.T) {
	trophies := sampleTrophies(t, 1)
	th := defaultTheme(t)

	framed, err := Render(trophies, th, Options{Columns: 1})
	require.NoError(t, err)
	assert.Contains(t, framed, `stroke-opacity="1"`)
	assert.Contains(t, framed, `fill-opacity="1"`)

	bare, err := Render(trophies, th, Options{Columns: 1, NoFrame: true, NoBackground: true})
	require.NoError(t, err)
	assert.Contains(t, bare, `stroke-opacity="0"`)
	assert.Contains(t, bare, `fill-opacity="0"`)
}

func TestRender_Deterministic(t *testing.T) {
	trophies := sampleTrophies(t, 4)
	opts := Options{Columns: 4}

	first, err := Render(trophies, defaultTheme(t), opts)
	require.NoError(t, err)
	second, err := Render(trophies, defaultTheme(t), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_EmptyList(t *testing.T) {
	out, err := Render(nil, defaultTheme(t), Options{Columns: 4})
	require.NoError(t, err)

	assert.Contains(t, out, fmt.Sprintf(`<svg width="%d" height="%d"`, 110*4, 110))
	assert.Equal(t, 1, strings.Count(out, "<svg"))
}

func TestRender_InvalidColumns(t *testing.T) {
	_, err := Render(sampleTrophies(t, 1), defaultTheme(t), Options{Columns: 0})
	assert.Error(t, err)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a&amp;b &lt;tag&gt; &quot;q&quot;", escape(`a&b <tag> "q"`))
}
