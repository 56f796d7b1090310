package quiz

import "sort"

// NumOutcomes is the number of learning-outcome dimensions the quiz measures.
// Every delta vector and score vector in the system has exactly this length,
// positionally aligned to LearningOutcomes.
const NumOutcomes = 6

// LearningOutcomes is the fixed, ordered list of outcome dimensions.
var LearningOutcomes = [NumOutcomes]string{
	"Understanding 'What is fake news'",
	"Understanding 'what is biased news'",
	"Understanding how to identify 'biased information'",
	"Recognising intentional fake news",
	"Recognising unintentional fake news",
	"Understanding what are some consequences of falling for Fake News",
}

// RankOutcomes returns the outcome indices ordered best to worst by score.
// Ties keep ascending index order (stable sort), so for equal scores the
// lower index ranks higher.
func RankOutcomes(score []int) []int {
	ranks := make([]int, len(score))
	for i := range ranks {
		ranks[i] = i
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		return score[ranks[a]] > score[ranks[b]]
	})
	return ranks
}
