package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/trophycase/trophycase/internal/pipeline"
)

const (
	defaultMaxRow    = 3
	defaultMaxColumn = 8

	cacheMaxAge          = 18_800
	cdnCacheMaxAge       = 28_800
	staleWhileRevalidate = 86_400
)

// HTTPStatuser provides HTTP status information for errors
type HTTPStatuser interface {
	Status() (int, string)
}

// trophyRenderer is the pipeline surface the handler consumes.
type trophyRenderer interface {
	Render(ctx context.Context, req pipeline.Request) (string, error)
}

func handleTrophy(renderer trophyRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer drainRequestBody(r)

		req := parseRequest(r)

		text, err := renderer.Render(r.Context(), req)
		if err != nil {
			if errors.Is(err, pipeline.ErrMissingUsername) {
				htmlResponse(w, http.StatusBadRequest, missingUsernamePage(r.URL.Path))
				return
			}

			status, message := errorStatus(err)
			log.Error().Err(err).Str("username", req.Username).Msg("trophy render failed")
			htmlResponse(w, status, errorPage(status, message))
			return
		}

		svgResponse(w, text)
	})
}

func handleHealthCheck() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer drainRequestBody(r)

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// parseRequest decodes the query string into a render request, applying the
// historical defaults. Row and column normalize to 0 for "unlimited";
// column=-1 is the legacy spelling of unlimited and is still accepted.
func parseRequest(r *http.Request) pipeline.Request {
	q := r.URL.Query()

	row := intParam(q.Get("row"), defaultMaxRow)
	column := intParam(q.Get("column"), defaultMaxColumn)
	if row < 0 {
		row = 0
	}
	if column < 0 {
		column = 0
	}

	return pipeline.Request{
		Username:     q.Get("username"),
		Titles:       csvParam(q["title"]),
		Ranks:        csvParam(q["rank"]),
		Row:          row,
		Column:       column,
		Theme:        q.Get("theme"),
		MarginWidth:  max(intParam(q.Get("margin-w"), 0), 0),
		MarginHeight: max(intParam(q.Get("margin-h"), 0), 0),
		NoBackground: boolParam(q.Get("no-bg")),
		NoFrame:      boolParam(q.Get("no-frame")),
	}
}

func intParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func boolParam(value string) bool {
	return value == "true"
}

// csvParam flattens repeated parameters and comma-separated values into one
// list, so title=A,B&title=C yields three entries.
func csvParam(values []string) []string {
	var out []string
	for _, value := range values {
		for part := range strings.SplitSeq(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func cacheControlHeader() string {
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		cacheMaxAge, cdnCacheMaxAge, staleWhileRevalidate)
}

func svgResponse(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", cacheControlHeader())
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, svg); err != nil {
		// record failure to log: trying to respond to the client at this
		// point will likely fail
		log.Info().Msgf("failed to write response: %v", err)
	}
}

func htmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Error and landing pages must not stick in shared caches.
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(statusCode)

	if _, err := io.WriteString(w, body); err != nil {
		log.Info().Msgf("failed to write response: %v", err)
	}
}

// errorStatus extracts HTTP status code and message from an error.
// Returns (StatusInternalServerError, StatusText) for errors that don't implement HTTPStatuser.
func errorStatus(err error) (int, string) {
	var statuser HTTPStatuser
	if errors.As(err, &statuser) {
		return statuser.Status()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// drainRequestBody drains the request body by reading and discarding the contents.
// This is useful to ensure the request body is fully consumed, which is important
// for connection reuse in HTTP/1 clients.
func drainRequestBody(r *http.Request) {
	if r.Body != nil {
		io.Copy(io.Discard, r.Body)
	}
}
