package stats

// Facet response models, shaped to match the GraphQL documents in
// internal/github. Field tags follow the API's camelCase names.

type TotalCount struct {
	TotalCount int64 `json:"totalCount"`
}

type ContributionsCollection struct {
	TotalCommitContributions            int64 `json:"totalCommitContributions"`
	RestrictedContributionsCount        int64 `json:"restrictedContributionsCount"`
	TotalPullRequestReviewContributions int64 `json:"totalPullRequestReviewContributions"`
}

type UserActivity struct {
	CreatedAt               string                  `json:"createdAt"`
	ContributionsCollection ContributionsCollection `json:"contributionsCollection"`
	Organizations           TotalCount              `json:"organizations"`
	Followers               TotalCount              `json:"followers"`
}

type UserIssues struct {
	OpenIssues   TotalCount `json:"openIssues"`
	ClosedIssues TotalCount `json:"closedIssues"`
}

type UserPullRequests struct {
	PullRequests TotalCount `json:"pullRequests"`
}

type LanguageNode struct {
	Name string `json:"name"`
}

type Languages struct {
	Nodes []*LanguageNode `json:"nodes"`
}

type RepositoryNode struct {
	Languages  Languages  `json:"languages"`
	Stargazers TotalCount `json:"stargazers"`
	CreatedAt  string     `json:"createdAt"`
}

type Repositories struct {
	TotalCount int64             `json:"totalCount"`
	Nodes      []*RepositoryNode `json:"nodes"`
}

type UserRepositories struct {
	Repositories Repositories `json:"repositories"`
}
