package domain

import "time"

type Category string

const (
	CategoryMiss   Category = "miss"
	CategoryMister Category = "mister"
)

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Image     string    `json:"img"`
	Votes     int       `json:"votes"`
	Number    int       `json:"candidate_number"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedCandidate is a candidate together with its 1-based row position in
// the votes-descending, name-ascending total order. Tied tallies still get
// distinct positions.
type RankedCandidate struct {
	Candidate
	RankPosition int `json:"rank_position"`
}

// Stats aggregates the public counters shown on the landing page.
type Stats struct {
	TotalCandidates int64            `json:"total_candidates"`
	TotalVotes      int64            `json:"total_votes"`
	Transactions    map[string]int64 `json:"transactions"`
	Deadline        time.Time        `json:"deadline"`
	VotingOpen      bool             `json:"voting_open"`
}
