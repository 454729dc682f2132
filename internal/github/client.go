package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"

	"github.com/trophycase/trophycase/internal/config"
	"github.com/trophycase/trophycase/internal/stats"
)

const userAgent = "trophycase"

// Client executes single GraphQL queries against the GitHub endpoint and
// classifies failures. Retryable failures are retried in place with a bounded
// attempt count; fatal failures surface immediately.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	maxAttempts uint
	newBackOff  func() backoff.BackOff
}

type Option func(*Client)

// WithHTTPClient overrides the HTTP client, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBackOff overrides the backoff policy constructed for each attempt loop.
func WithBackOff(factory func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = factory
	}
}

func NewClient(cfg config.GithubConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		endpoint:    cfg.APIURL,
		maxAttempts: uint(max(cfg.MaxAttempts, 1)),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 10 * time.Second
			return b
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// UserActivity fetches contribution, organization and follower counts.
func (c *Client) UserActivity(ctx context.Context, login string, cred Credential) (stats.UserActivity, error) {
	return fetchFacet[stats.UserActivity](ctx, c, "activity", queryUserActivity, login, cred)
}

// UserIssues fetches open and closed issue counts.
func (c *Client) UserIssues(ctx context.Context, login string, cred Credential) (stats.UserIssues, error) {
	return fetchFacet[stats.UserIssues](ctx, c, "issues", queryUserIssues, login, cred)
}

// UserPullRequests fetches the total pull request count.
func (c *Client) UserPullRequests(ctx context.Context, login string, cred Credential) (stats.UserPullRequests, error) {
	return fetchFacet[stats.UserPullRequests](ctx, c, "pull_requests", queryUserPullRequests, login, cred)
}

// UserRepositories fetches repository totals, stargazers and languages.
func (c *Client) UserRepositories(ctx context.Context, login string, cred Credential) (stats.UserRepositories, error) {
	return fetchFacet[stats.UserRepositories](ctx, c, "repositories", queryUserRepositories, login, cred)
}

// ViewerLogin resolves the login of the account the credential authenticates
// as. A single attempt only: owner resolution is fail-fast.
func (c *Client) ViewerLogin(ctx context.Context, cred Credential) (string, error) {
	body, err := c.post(ctx, "viewer", queryViewer, "", cred)
	if err != nil {
		return "", err
	}

	var env struct {
		Data *struct {
			Viewer *struct {
				Login string `json:"login"`
			} `json:"viewer"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Data == nil || env.Data.Viewer == nil {
		return "", &Error{Kind: KindMalformed, Facet: "viewer", Message: "viewer login missing from response", cause: err}
	}

	return env.Data.Viewer.Login, nil
}

// fetchFacet runs one facet query through the bounded attempt loop. Fatal
// classifications abort the loop; a rate-limit delay supplied by the server
// takes precedence over the backoff schedule.
func fetchFacet[T any](ctx context.Context, c *Client, facet, query, login string, cred Credential) (T, error) {
	op := func() (T, error) {
		var zero T

		body, err := c.post(ctx, facet, query, login, cred)
		if err != nil {
			return zero, retryClass(err)
		}

		v, err := decodeUser[T](facet, body)
		if err != nil {
			return zero, retryClass(err)
		}

		return v, nil
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxAttempts),
	)
}

// retryClass translates a classified error into the backoff package's
// control-flow vocabulary, preserving the original error in the chain.
func retryClass(err error) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err
	}

	if !apiErr.Retryable() {
		return backoff.Permanent(err)
	}

	if apiErr.Kind == KindRateLimited && apiErr.RetryAfter > 0 {
		return errors.Join(err, backoff.RetryAfter(int(apiErr.RetryAfter/time.Second)))
	}

	return err
}

// post executes the query once, classifying transport and status failures.
// Returns the raw response body on HTTP 200.
func (c *Client) post(ctx context.Context, facet, query, login string, cred Credential) ([]byte, error) {
	payload := map[string]any{"query": query}
	if login != "" {
		payload["variables"] = map[string]string{"username": login}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Facet: facet, cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Facet: facet, cause: err}
	}
	req.Header.Set("Authorization", "bearer "+cred.Token())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// The request itself was abandoned; don't reclassify as transient
			// or the attempt loop will spin on a dead context.
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: KindTransient, Facet: facet, cause: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, &Error{Kind: KindTransient, Facet: facet, cause: err}
	}

	switch {
	case res.StatusCode == http.StatusOK:
		return body, nil
	case res.StatusCode == http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, Facet: facet, Message: "token rejected"}
	case res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusTooManyRequests:
		return nil, &Error{
			Kind:       KindRateLimited,
			Facet:      facet,
			RetryAfter: retryAfter(res.Header),
			Message:    fmt.Sprintf("status %d", res.StatusCode),
		}
	case res.StatusCode >= 500:
		return nil, &Error{Kind: KindTransient, Facet: facet, Message: fmt.Sprintf("status %d", res.StatusCode)}
	default:
		return nil, &Error{Kind: KindMalformed, Facet: facet, Message: fmt.Sprintf("unexpected status %d", res.StatusCode)}
	}
}

func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// decodeUser interprets the GraphQL data/errors envelope for a user-scoped
// query. A populated user object wins even when partial errors are present,
// matching GitHub's partial-response behaviour.
func decodeUser[T any](facet string, body []byte) (T, error) {
	var zero T
	var env struct {
		Data *struct {
			User *T `json:"user"`
		} `json:"data"`
		Errors  []graphqlError `json:"errors"`
		Message string         `json:"message"`
	}

	if err := json.Unmarshal(body, &env); err != nil {
		return zero, &Error{Kind: KindMalformed, Facet: facet, cause: err}
	}

	if env.Data != nil && env.Data.User != nil {
		return *env.Data.User, nil
	}

	if rateLimited(env.Errors, env.Message) {
		return zero, &Error{Kind: KindRateLimited, Facet: facet, Message: "rate limit exceeded"}
	}

	for _, e := range env.Errors {
		if strings.EqualFold(e.Type, "NOT_FOUND") {
			return zero, &Error{Kind: KindNotFound, Facet: facet, Message: e.Message}
		}
	}

	// A null user without a NOT_FOUND error still means the subject doesn't
	// resolve; anything else is contract drift.
	if env.Data != nil {
		return zero, &Error{Kind: KindNotFound, Facet: facet, Message: "user not found"}
	}

	return zero, &Error{Kind: KindMalformed, Facet: facet, Message: firstErrorMessage(env.Errors)}
}

func rateLimited(errs []graphqlError, message string) bool {
	if strings.Contains(strings.ToLower(message), "rate limit") {
		return true
	}
	for _, e := range errs {
		if strings.Contains(strings.ToUpper(e.Type), "RATE_LIMIT") ||
			strings.Contains(strings.ToLower(e.Message), "rate limit") {
			return true
		}
	}
	return false
}

func firstErrorMessage(errs []graphqlError) string {
	if len(errs) == 0 {
		return "empty response envelope"
	}
	return errs[0].Message
}
