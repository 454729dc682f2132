package trophy

import (
	"strings"

	"github.com/trophycase/trophycase/internal/stats"
)

// List is an ordered trophy sequence in catalog order. Filter methods return
// reduced lists; the underlying trophies are never mutated.
type List []Trophy

// Evaluate scores every catalog category against the bundle, in fixed catalog
// order. The AllSuperRank secret trophy is derived from the seven primary
// categories: it is achieved only when all of them rank S or better.
func Evaluate(bundle stats.Bundle) List {
	primary := []Trophy{
		newTrophy(bundle.TotalStargazers, "Stars", []string{"Star", "Stars"}, false, conditionsStars, ""),
		newTrophy(bundle.TotalCommits, "Commits", []string{"Commit", "Commits"}, false, conditionsCommits, ""),
		newTrophy(bundle.TotalFollowers, "Followers", []string{"Follower", "Followers"}, false, conditionsFollowers, ""),
		newTrophy(bundle.TotalIssues, "Issues", []string{"Issue", "Issues"}, false, conditionsIssues, ""),
		newTrophy(bundle.TotalPullRequests, "PullRequest", []string{"PR", "PullRequest", "Pulls", "Puller"}, false, conditionsPullRequests, ""),
		newTrophy(bundle.TotalRepositories, "Repositories", []string{"Repo", "Repository", "Repositories"}, false, conditionsRepositories, ""),
		newTrophy(bundle.TotalReviews, "Reviews", []string{"Review", "Reviews"}, false, conditionsReviews, ""),
	}

	allSuper := int64(1)
	for _, t := range primary {
		if !strings.HasPrefix(string(t.Rank), "S") {
			allSuper = 0
			break
		}
	}

	list := List(primary)
	list = append(list,
		newTrophy(allSuper, "AllSuperRank", []string{"AllSuperRank"}, true, conditionSecretAllS, "All S Rank"),
		newTrophy(bundle.LanguageCount, "MultiLanguage", []string{"MultipleLang", "MultiLanguage"}, true, conditionSecretRainbow, ""),
		newTrophy(bundle.DurationYears, "LongTimeUser", []string{"LongTimeUser"}, true, conditionSecretLongTime, ""),
		newTrophy(bundle.AncientAccount, "AncientUser", []string{"AncientUser"}, true, conditionSecretAncient, "Before 2010"),
		newTrophy(bundle.OGAccount, "OGUser", []string{"OGUser"}, true, conditionSecretOG, "Joined 2008"),
		newTrophy(bundle.Joined2020, "Joined2020", []string{"Joined2020"}, true, conditionSecretJoined2020, "Joined 2020"),
		newTrophy(bundle.TotalOrganizations, "Organizations", []string{"Organizations", "Orgs", "Teams"}, true, conditionSecretOrg, ""),
		newTrophy(bundle.DurationDays, "Experience", []string{"Experience", "Duration", "Since"}, false, conditionsExperience, ""),
	)

	return list
}

// Achieved drops categories with no tier met, including unachieved secret
// trophies.
func (l List) Achieved() List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if t.Achieved() {
			out = append(out, t)
		}
	}
	return out
}

// FilterTitles restricts to trophies matching any of the requested titles
// (alias-aware), preserving catalog order. Entries prefixed with "-" are
// handled by ExcludeTitles and ignored here.
func (l List) FilterTitles(titles []string) List {
	include := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		if !strings.HasPrefix(title, "-") {
			include[title] = struct{}{}
		}
	}
	if len(include) == 0 {
		return l
	}

	out := make(List, 0, len(l))
	for _, t := range l {
		for _, alias := range t.FilterTitles {
			if _, ok := include[alias]; ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ExcludeTitles removes trophies named by "-"-prefixed entries.
func (l List) ExcludeTitles(titles []string) List {
	exclude := make(map[string]struct{})
	for _, title := range titles {
		if name, ok := strings.CutPrefix(title, "-"); ok {
			exclude[name] = struct{}{}
		}
	}
	if len(exclude) == 0 {
		return l
	}

	out := make(List, 0, len(l))
	for _, t := range l {
		if _, ok := exclude[t.Title]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// FilterRanks restricts by tier label. If any entry carries a "-" prefix the
// whole filter switches to exclusion mode, mirroring the title filter.
func (l List) FilterRanks(ranks []string) List {
	exclusion := false
	for _, r := range ranks {
		if strings.HasPrefix(r, "-") {
			exclusion = true
			break
		}
	}

	if exclusion {
		exclude := make(map[string]struct{})
		for _, r := range ranks {
			if name, ok := strings.CutPrefix(r, "-"); ok {
				exclude[name] = struct{}{}
			}
		}

		out := make(List, 0, len(l))
		for _, t := range l {
			if _, ok := exclude[string(t.Rank)]; !ok {
				out = append(out, t)
			}
		}
		return out
	}

	include := make(map[string]struct{}, len(ranks))
	for _, r := range ranks {
		include[r] = struct{}{}
	}

	out := make(List, 0, len(l))
	for _, t := range l {
		if _, ok := include[string(t.Rank)]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Limit truncates to the first n trophies; n <= 0 means no limit.
func (l List) Limit(n int) List {
	if n <= 0 || n >= len(l) {
		return l
	}
	return l[:n]
}
