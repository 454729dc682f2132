// Package stats holds the statistic models fetched from GitHub and the
// derived bundle the trophy engine scores against.
package stats

import "fmt"

// Subject identifies the account a request's statistics are computed for.
// Subjects are value types; Key provides the cache identity.
type Subject struct {
	Login string

	// IncludePrivate counts restricted (private) contributions. Set only when
	// the subject is the token owner.
	IncludePrivate bool
}

// Key returns the stats-cache key for the subject. The version prefix allows
// cached bundles to be abandoned wholesale when the derivation changes.
func (s Subject) Key() string {
	return fmt.Sprintf("v2-%s-private=%t", s.Login, s.IncludePrivate)
}
