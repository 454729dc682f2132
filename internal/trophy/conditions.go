package trophy

// Condition is one tier threshold within a category. Meeting RequiredScore
// (inclusive) achieves the rank.
type Condition struct {
	Rank          Rank
	Message       string
	RequiredScore int64
}

var conditionsStars = []Condition{
	{RankSSS, "Super Stargazer", 2000},
	{RankSS, "High Stargazer", 700},
	{RankS, "Stargazer", 200},
	{RankAAA, "Super Star", 100},
	{RankAA, "High Star", 50},
	{RankA, "You are a Star", 30},
	{RankB, "Middle Star", 10},
	{RankC, "First Star", 1},
}

var conditionsCommits = []Condition{
	{RankSSS, "God Committer", 4000},
	{RankSS, "Deep Committer", 2000},
	{RankS, "Super Committer", 1000},
	{RankAAA, "Ultra Committer", 500},
	{RankAA, "Hyper Committer", 200},
	{RankA, "High Committer", 100},
	{RankB, "Middle Committer", 10},
	{RankC, "First Commit", 1},
}

var conditionsFollowers = []Condition{
	{RankSSS, "Super Celebrity", 1000},
	{RankSS, "Ultra Celebrity", 400},
	{RankS, "Hyper Celebrity", 200},
	{RankAAA, "Famous User", 100},
	{RankAA, "Active User", 50},
	{RankA, "Dynamic User", 20},
	{RankB, "Many Friends", 10},
	{RankC, "First Friend", 1},
}

var conditionsIssues = []Condition{
	{RankSSS, "God Issuer", 1000},
	{RankSS, "Deep Issuer", 500},
	{RankS, "Super Issuer", 200},
	{RankAAA, "Ultra Issuer", 100},
	{RankAA, "Hyper Issuer", 50},
	{RankA, "High Issuer", 20},
	{RankB, "Middle Issuer", 10},
	{RankC, "First Issue", 1},
}

var conditionsPullRequests = []Condition{
	{RankSSS, "God Puller", 1000},
	{RankSS, "Deep Puller", 500},
	{RankS, "Super Puller", 200},
	{RankAAA, "Ultra Puller", 100},
	{RankAA, "Hyper Puller", 50},
	{RankA, "High Puller", 20},
	{RankB, "Middle Puller", 10},
	{RankC, "First Pull", 1},
}

var conditionsRepositories = []Condition{
	{RankSSS, "God Repo Creator", 50},
	{RankSS, "Deep Repo Creator", 45},
	{RankS, "Super Repo Creator", 40},
	{RankAAA, "Ultra Repo Creator", 35},
	{RankAA, "Hyper Repo Creator", 30},
	{RankA, "High Repo Creator", 20},
	{RankB, "Middle Repo Creator", 10},
	{RankC, "First Repository", 1},
}

var conditionsReviews = []Condition{
	{RankSSS, "God Reviewer", 70},
	{RankSS, "Deep Reviewer", 57},
	{RankS, "Super Reviewer", 45},
	{RankAAA, "Ultra Reviewer", 30},
	{RankAA, "Hyper Reviewer", 20},
	{RankA, "Active Reviewer", 8},
	{RankB, "Intermediate Reviewer", 3},
	{RankC, "New Reviewer", 1},
}

var conditionsExperience = []Condition{
	{RankSSS, "Seasoned Veteran", 70},
	{RankSS, "Grandmaster", 55},
	{RankS, "Master Dev", 40},
	{RankAAA, "Expert Dev", 28},
	{RankAA, "Experienced Dev", 18},
	{RankA, "Intermediate Dev", 11},
	{RankB, "Junior Dev", 6},
	{RankC, "Newbie", 2},
}

var conditionSecretRainbow = []Condition{{RankSecret, "Rainbow Lang User", 10}}
var conditionSecretAllS = []Condition{{RankSecret, "S Rank Hacker", 1}}
var conditionSecretJoined2020 = []Condition{{RankSecret, "Everything started...", 1}}
var conditionSecretAncient = []Condition{{RankSecret, "Ancient User", 1}}
var conditionSecretLongTime = []Condition{{RankSecret, "Village Elder", 10}}
var conditionSecretOrg = []Condition{{RankSecret, "Jack of all Trades", 3}}
var conditionSecretOG = []Condition{{RankSecret, "OG User", 1}}
