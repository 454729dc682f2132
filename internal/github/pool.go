package github

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Credential is an opaque GitHub access token. Credentials are owned by the
// Pool for the life of the process and handed out by value.
type Credential struct {
	token string
}

// Token returns the bearer token value.
func (c Credential) Token() string {
	return c.token
}

// OwnerResolver resolves the login of the account a credential authenticates
// as. Client.ViewerLogin satisfies this.
type OwnerResolver func(ctx context.Context, cred Credential) (string, error)

// Pool rotates requests across the configured credentials. With a single
// credential it additionally resolves the token owner's login, allowing
// requests to omit a username. The cursor is the pool's only mutable state.
type Pool struct {
	creds   []Credential
	cursor  atomic.Uint64
	resolve OwnerResolver

	ownerOnce sync.Once
	owner     string
	ownerErr  error
}

// NewPool creates a credential pool from the configured tokens. At least one
// token is required: this failure is fatal at startup, since no request could
// ever succeed without a credential.
func NewPool(tokens []string, resolve OwnerResolver) (*Pool, error) {
	if len(tokens) == 0 {
		return nil, errors.New("credential pool requires at least one token")
	}

	creds := make([]Credential, len(tokens))
	for i, t := range tokens {
		creds[i] = Credential{token: t}
	}

	return &Pool{creds: creds, resolve: resolve}, nil
}

// Acquire returns the next credential in rotation. With one credential it is
// always that credential; no ordering guarantee is made beyond fair rotation.
func (p *Pool) Acquire() Credential {
	if len(p.creds) == 1 {
		return p.creds[0]
	}
	n := p.cursor.Add(1)
	return p.creds[(n-1)%uint64(len(p.creds))]
}

// SingleToken reports whether the pool holds exactly one credential, the mode
// in which requests may omit a username.
func (p *Pool) SingleToken() bool {
	return len(p.creds) == 1
}

// Owner resolves and caches the login of the single credential's account.
// Resolution happens at most once per process: the first outcome, success or
// failure, is retained. Only valid in single-token mode.
func (p *Pool) Owner(ctx context.Context) (string, error) {
	if !p.SingleToken() {
		return "", errors.New("owner identity is only available in single-token mode")
	}

	p.ownerOnce.Do(func() {
		// The resolved identity outlives any single request, so the lookup is
		// detached from the triggering request's cancellation.
		owner, err := p.resolve(context.WithoutCancel(ctx), p.creds[0])
		if err != nil {
			p.ownerErr = err
			log.Warn().Err(err).Msg("failed to resolve token owner")
			return
		}

		p.owner = owner
		log.Info().Str("owner", owner).Msg("single token mode: resolved token owner")
	})

	return p.owner, p.ownerErr
}
