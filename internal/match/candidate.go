package match

import (
	"sort"

	"column-mover/internal/common"
)

// MinScore is the similarity a header needs to be suggested.
const MinScore = 0.6

// Candidate is an input header scored against a wanted name.
type Candidate struct {
	Header string
	Score  float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// Rank scores every header against name and returns those reaching
// MinScore, best first. Ties keep header order.
func Rank(name string, headers []string) CandidateList {
	var list CandidateList

	for _, h := range headers {
		score := HeaderSimilarity(name, h)
		if score < MinScore {
			continue
		}

		list = append(list, Candidate{Header: h, Score: score})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})

	return list
}

// Best returns the top candidate, if any.
func (l CandidateList) Best() (Candidate, bool) {
	return common.First(l)
}

// Suggest returns the header most similar to name.
func Suggest(name string, headers []string) (string, bool) {
	best, ok := Rank(name, headers).Best()
	return best.Header, ok
}
