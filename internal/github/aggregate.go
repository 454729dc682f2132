package github

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/trophycase/trophycase/internal/stats"
)

// Aggregator joins the four independent facet queries into one statistics
// bundle.
type Aggregator struct {
	client *Client
}

func NewAggregator(client *Client) *Aggregator {
	return &Aggregator{client: client}
}

// Aggregate fetches all four facets concurrently with a single credential, so
// the whole bundle is attributed to one rate-limit bucket. The join is
// all-or-nothing: a fatal facet failure cancels the siblings and fails the
// aggregation, while retryable failures are retried per facet inside the
// client without re-issuing the others. Partial bundles are never returned.
func (a *Aggregator) Aggregate(ctx context.Context, subject stats.Subject, cred Credential) (stats.Bundle, error) {
	var (
		activity     stats.UserActivity
		issues       stats.UserIssues
		pullRequests stats.UserPullRequests
		repositories stats.UserRepositories
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		activity, err = a.client.UserActivity(ctx, subject.Login, cred)
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = a.client.UserIssues(ctx, subject.Login, cred)
		return err
	})
	g.Go(func() error {
		var err error
		pullRequests, err = a.client.UserPullRequests(ctx, subject.Login, cred)
		return err
	})
	g.Go(func() error {
		var err error
		repositories, err = a.client.UserRepositories(ctx, subject.Login, cred)
		return err
	})

	if err := g.Wait(); err != nil {
		return stats.Bundle{}, err
	}

	return stats.NewBundle(activity, issues, pullRequests, repositories, subject.IncludePrivate), nil
}
