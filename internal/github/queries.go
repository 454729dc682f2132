package github

// One GraphQL document per facet. The four facet queries are deliberately
// independent so they can be issued concurrently and retried in isolation.

const queryUserActivity = `
query userInfo($username: String!) {
  user(login: $username) {
    createdAt
    contributionsCollection {
      totalCommitContributions
      restrictedContributionsCount
      totalPullRequestReviewContributions
    }
    organizations(first: 1) {
      totalCount
    }
    followers(first: 1) {
      totalCount
    }
  }
}
`

const queryUserIssues = `
query userInfo($username: String!) {
  user(login: $username) {
    openIssues: issues(states: OPEN) {
      totalCount
    }
    closedIssues: issues(states: CLOSED) {
      totalCount
    }
  }
}
`

const queryUserPullRequests = `
query userInfo($username: String!) {
  user(login: $username) {
    pullRequests(first: 1) {
      totalCount
    }
  }
}
`

const queryUserRepositories = `
query userInfo($username: String!) {
  user(login: $username) {
    repositories(first: 50, ownerAffiliations: OWNER, orderBy: {direction: DESC, field: STARGAZERS}) {
      totalCount
      nodes {
        languages(first: 3, orderBy: {direction: DESC, field: SIZE}) {
          nodes {
            name
          }
        }
        stargazers {
          totalCount
        }
        createdAt
      }
    }
  }
}
`

const queryViewer = `
query {
  viewer {
    login
  }
}
`
