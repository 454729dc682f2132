package stats

import (
	"time"
)

// Bundle is the joined result of the four facets, reduced to the scores the
// trophy engine ranks against. Immutable once constructed; bundles are the
// unit stored in the stats cache.
type Bundle struct {
	TotalCommits       int64
	TotalFollowers     int64
	TotalIssues        int64
	TotalOrganizations int64
	TotalPullRequests  int64
	TotalReviews       int64
	TotalStargazers    int64
	TotalRepositories  int64
	LanguageCount      int64

	// DurationYears is whole years since the account's earliest activity;
	// DurationDays is the same span in hundreds of days.
	DurationYears int64
	DurationDays  int64

	// Account-age flags, 1 or 0 so they feed the same threshold scoring as
	// the counters.
	AncientAccount int64
	OGAccount      int64
	Joined2020     int64
}

// NewBundle derives a Bundle from the four facet results. The earliest of the
// account creation date and any repository creation date anchors the
// account-age scores.
func NewBundle(
	activity UserActivity,
	issues UserIssues,
	pullRequests UserPullRequests,
	repositories UserRepositories,
	includePrivate bool,
) Bundle {
	return newBundleAt(activity, issues, pullRequests, repositories, includePrivate, time.Now())
}

func newBundleAt(
	activity UserActivity,
	issues UserIssues,
	pullRequests UserPullRequests,
	repositories UserRepositories,
	includePrivate bool,
	now time.Time,
) Bundle {
	commits := activity.ContributionsCollection.TotalCommitContributions
	if includePrivate {
		commits += activity.ContributionsCollection.RestrictedContributionsCount
	}

	earliest := parseRFC3339(activity.CreatedAt, now)

	var stargazers int64
	languages := make(map[string]struct{})

	for _, repo := range repositories.Repositories.Nodes {
		if repo == nil {
			continue
		}

		stargazers += repo.Stargazers.TotalCount

		for _, lang := range repo.Languages.Nodes {
			if lang != nil {
				languages[lang.Name] = struct{}{}
			}
		}

		if created := parseRFC3339(repo.CreatedAt, now); created.Before(earliest) {
			earliest = created
		}
	}

	duration := now.Sub(earliest)
	if duration < 0 {
		duration = 0
	}

	earliestYear := earliest.UTC().Year()

	return Bundle{
		TotalCommits:       commits,
		TotalFollowers:     activity.Followers.TotalCount,
		TotalIssues:        issues.OpenIssues.TotalCount + issues.ClosedIssues.TotalCount,
		TotalOrganizations: activity.Organizations.TotalCount,
		TotalPullRequests:  pullRequests.PullRequests.TotalCount,
		TotalReviews:       activity.ContributionsCollection.TotalPullRequestReviewContributions,
		TotalStargazers:    stargazers,
		TotalRepositories:  repositories.Repositories.TotalCount,
		LanguageCount:      int64(len(languages)),
		DurationYears:      durationYears(duration),
		DurationDays:       int64(duration/(24*time.Hour)) / 100,
		AncientAccount:     boolScore(earliestYear <= 2010),
		OGAccount:          boolScore(earliestYear <= 2008),
		Joined2020:         boolScore(earliestYear == 2020),
	}
}

// durationYears counts whole years by projecting the duration from the Unix
// epoch, so leap years accumulate the same way the account did.
func durationYears(d time.Duration) int64 {
	return int64(time.UnixMilli(d.Milliseconds()).UTC().Year() - 1970)
}

// parseRFC3339 falls back to now on malformed timestamps, which scores the
// account as brand new rather than failing the whole bundle.
func parseRFC3339(s string, now time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return now
	}
	return t
}

func boolScore(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
