// Package pipeline orchestrates a render request: render cache, stats cache,
// aggregation, scoring and SVG rendering.
package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/trophycase/trophycase/internal/cache"
	"github.com/trophycase/trophycase/internal/github"
	"github.com/trophycase/trophycase/internal/stats"
	"github.com/trophycase/trophycase/internal/svg"
	"github.com/trophycase/trophycase/internal/theme"
	"github.com/trophycase/trophycase/internal/trophy"
)

// StatsFetcher aggregates the four statistic facets for a subject.
// github.Aggregator is the production implementation.
type StatsFetcher interface {
	Aggregate(ctx context.Context, subject stats.Subject, cred github.Credential) (stats.Bundle, error)
}

// Renderer turns a computed trophy list into SVG text. svg.Render is the
// production implementation.
type Renderer func(trophies []trophy.Trophy, th theme.Theme, opts svg.Options) (string, error)

// Pipeline owns the two cache tiers and drives a request from render key to
// SVG text. Both caches are injected so tests construct isolated instances.
type Pipeline struct {
	pool        *github.Pool
	fetcher     StatsFetcher
	statsCache  *cache.Loading[stats.Bundle]
	renderCache *cache.Loading[string]
	render      Renderer
}

func New(
	pool *github.Pool,
	fetcher StatsFetcher,
	statsStore cache.Store[stats.Bundle],
	renderStore cache.Store[string],
	render Renderer,
) *Pipeline {
	return &Pipeline{
		pool:        pool,
		fetcher:     fetcher,
		statsCache:  cache.NewLoading(statsStore),
		renderCache: cache.NewLoading(renderStore),
		render:      render,
	}
}

// Render resolves the request to SVG text: render-cache lookup, then on a
// miss a stats-cache lookup, then on a miss one aggregated fetch. Errors
// surface with their originating kind; no stage substitutes a default result.
func (p *Pipeline) Render(ctx context.Context, req Request) (string, error) {
	th, ok := theme.Resolve(req.Theme)
	if !ok {
		return "", &ValidationError{Reason: "unknown theme: " + req.Theme}
	}

	subject, err := p.subject(ctx, req.Username)
	if err != nil {
		return "", err
	}

	return p.renderCache.GetOrLoad(ctx, renderKey(subject, req), func(ctx context.Context) (string, error) {
		bundle, err := p.statsCache.GetOrLoad(ctx, subject.Key(), func(ctx context.Context) (stats.Bundle, error) {
			cred := p.pool.Acquire()
			return p.fetcher.Aggregate(ctx, subject, cred)
		})
		if err != nil {
			return "", err
		}

		trophies := trophy.Compute(bundle, req.Titles, req.Ranks, req.Row, req.Column)

		columns := req.Column
		if columns <= 0 || columns > len(trophies) {
			columns = max(len(trophies), 1)
		}

		text, err := p.render(trophies, th, svg.Options{
			PanelSize:    svg.DefaultPanelSize,
			Columns:      columns,
			MarginWidth:  req.MarginWidth,
			MarginHeight: req.MarginHeight,
			NoBackground: req.NoBackground,
			NoFrame:      req.NoFrame,
		})
		if err != nil {
			return "", &RenderError{cause: err}
		}

		return text, nil
	})
}

// subject derives the request's subject. An omitted username is valid only in
// single-token mode, where it resolves to the token owner. Private
// contributions are included only when the subject is the owner.
func (p *Pipeline) subject(ctx context.Context, username string) (stats.Subject, error) {
	if username == "" {
		if !p.pool.SingleToken() {
			return stats.Subject{}, ErrMissingUsername
		}

		owner, err := p.pool.Owner(ctx)
		if err != nil {
			return stats.Subject{}, err
		}

		return stats.Subject{Login: owner, IncludePrivate: true}, nil
	}

	includePrivate := false
	if p.pool.SingleToken() {
		// A failed owner resolution degrades to public-only stats for
		// explicit usernames rather than failing the request.
		owner, err := p.pool.Owner(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("owner unresolved; serving public stats only")
		} else {
			includePrivate = strings.EqualFold(owner, username)
		}
	}

	return stats.Subject{Login: username, IncludePrivate: includePrivate}, nil
}
