package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophycase/trophycase/internal/github"
	"github.com/trophycase/trophycase/internal/pipeline"
)

type stubRenderer struct {
	svg string
	err error
	req pipeline.Request
}

func (s *stubRenderer) Render(ctx context.Context, req pipeline.Request) (string, error) {
	s.req = req
	if s.err != nil {
		return "", s.err
	}
	return s.svg, nil
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleTrophy_Success(t *testing.T) {
	renderer := &stubRenderer{svg: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`}

	rec := get(t, handleTrophy(renderer), "/?username=octocat")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=18800")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "s-maxage=28800")
	assert.Equal(t, renderer.svg, rec.Body.String())
}

func TestHandleTrophy_MissingUsernameLandingPage(t *testing.T) {
	renderer := &stubRenderer{err: pipeline.ErrMissingUsername}

	rec := get(t, handleTrophy(renderer), "/")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "username")
}

func TestHandleTrophy_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited", &github.Error{Kind: github.KindRateLimited}, 419},
		{"not found", &github.Error{Kind: github.KindNotFound}, http.StatusNotFound},
		{"unauthorized", &github.Error{Kind: github.KindUnauthorized}, http.StatusUnauthorized},
		{"transient", &github.Error{Kind: github.KindTransient}, http.StatusBadGateway},
		{"validation", &pipeline.ValidationError{Reason: "unknown theme: x"}, http.StatusBadRequest},
		{"render", &pipeline.RenderError{}, http.StatusInternalServerError},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, handleTrophy(&stubRenderer{err: tc.err}), "/?username=octocat")

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestHandleHealthCheck(t *testing.T) {
	rec := get(t, handleHealthCheck(), "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestParseRequest_Defaults(t *testing.T) {
	req := parseRequest(httptest.NewRequest(http.MethodGet, "/?username=octocat", nil))

	assert.Equal(t, "octocat", req.Username)
	assert.Equal(t, 3, req.Row)
	assert.Equal(t, 8, req.Column)
	assert.Empty(t, req.Titles)
	assert.Empty(t, req.Ranks)
	assert.Equal(t, "", req.Theme)
	assert.Zero(t, req.MarginWidth)
	assert.False(t, req.NoBackground)
	assert.False(t, req.NoFrame)
}

func TestParseRequest_Full(t *testing.T) {
	target := "/?" + url.Values{
		"username": {"octocat"},
		"title":    {"Stars,Commits", "Followers"},
		"rank":     {"S,-SECRET"},
		"row":      {"2"},
		"column":   {"5"},
		"theme":    {"dracula"},
		"margin-w": {"6"},
		"margin-h": {"4"},
		"no-bg":    {"true"},
		"no-frame": {"true"},
	}.Encode()

	req := parseRequest(httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, []string{"Stars", "Commits", "Followers"}, req.Titles)
	assert.Equal(t, []string{"S", "-SECRET"}, req.Ranks)
	assert.Equal(t, 2, req.Row)
	assert.Equal(t, 5, req.Column)
	assert.Equal(t, "dracula", req.Theme)
	assert.Equal(t, 6, req.MarginWidth)
	assert.Equal(t, 4, req.MarginHeight)
	assert.True(t, req.NoBackground)
	assert.True(t, req.NoFrame)
}

func TestParseRequest_Normalization(t *testing.T) {
	// column=-1 is the historical spelling of "unlimited".
	req := parseRequest(httptest.NewRequest(http.MethodGet, "/?username=o&row=-2&column=-1&margin-w=-5", nil))
	assert.Zero(t, req.Row)
	assert.Zero(t, req.Column)
	assert.Zero(t, req.MarginWidth)

	// Unparseable numbers fall back to the defaults.
	req = parseRequest(httptest.NewRequest(http.MethodGet, "/?username=o&row=abc&column=", nil))
	assert.Equal(t, 3, req.Row)
	assert.Equal(t, 8, req.Column)

	// Blank CSV entries are dropped.
	req = parseRequest(httptest.NewRequest(http.MethodGet, "/?username=o&title=,Stars,%20,Commits,", nil))
	assert.Equal(t, []string{"Stars", "Commits"}, req.Titles)

	// Anything but the literal "true" is false.
	req = parseRequest(httptest.NewRequest(http.MethodGet, "/?username=o&no-bg=1&no-frame=TRUE", nil))
	assert.False(t, req.NoBackground)
	assert.False(t, req.NoFrame)
}

func TestErrorPage(t *testing.T) {
	page := errorPage(http.StatusNotFound, "user not found")

	assert.Contains(t, page, "404")
	assert.Contains(t, page, "user not found")
}

func TestHandleTrophy_ErrorMessageIsEscaped(t *testing.T) {
	payload := `<script>alert(1)</script>`
	renderer := &stubRenderer{err: &pipeline.ValidationError{Reason: "unknown theme: " + payload}}

	rec := get(t, handleTrophy(renderer), "/?username=o&theme="+url.QueryEscape(payload))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), payload)
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestMissingUsernamePage_PathIsEscaped(t *testing.T) {
	page := missingUsernamePage(`/"><script>alert(1)</script>`)

	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestMissingUsernamePage_ListsThemes(t *testing.T) {
	page := missingUsernamePage("/")

	require.Contains(t, page, "username")
	assert.Contains(t, page, "default")
	assert.Contains(t, page, "dracula")
}
