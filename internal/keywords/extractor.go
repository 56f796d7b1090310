// Package keywords provides the keyword-extraction capability behind the
// /keywords endpoints: free text in, ranked keyphrases out. The service core
// treats the ranking algorithm as a black box behind the Extractor interface.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// Keyword is one ranked phrase extracted from a document. Scores are
// normalized to (0, 1], highest first.
type Keyword struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Extractor ranks candidate phrases in free text. maxPhraseLen caps the
// phrase length in words (0 means unlimited); topN caps the result count.
// Implementations are constructed at startup and passed into the handlers.
type Extractor interface {
	Extract(text string, maxPhraseLen, topN int) []Keyword
}

// DefaultTopN matches the service contract of at most 30 ranked phrases.
const DefaultTopN = 30

type rakeExtractor struct {
	stopwords map[string]bool
}

// NewRAKE returns a degree/frequency keyphrase extractor: candidate phrases
// are maximal stopword-free word runs, scored by the sum of their words'
// co-occurrence degree over frequency.
func NewRAKE() Extractor {
	stop := make(map[string]bool, len(stopwordList))
	for _, w := range stopwordList {
		stop[w] = true
	}
	return &rakeExtractor{stopwords: stop}
}

func (e *rakeExtractor) Extract(text string, maxPhraseLen, topN int) []Keyword {
	if topN <= 0 {
		topN = DefaultTopN
	}
	phrases := e.candidatePhrases(text, maxPhraseLen)
	if len(phrases) == 0 {
		return nil
	}

	// Word degree and frequency over all candidate phrases.
	freq := map[string]int{}
	degree := map[string]int{}
	for _, p := range phrases {
		for _, w := range p {
			freq[w]++
			degree[w] += len(p) - 1
		}
	}

	type scored struct {
		phrase string
		score  float64
		order  int
	}
	best := map[string]scored{}
	order := 0
	for _, p := range phrases {
		s := 0.0
		for _, w := range p {
			s += float64(degree[w]+freq[w]) / float64(freq[w])
		}
		key := strings.Join(p, " ")
		if prev, ok := best[key]; !ok || s > prev.score {
			o := order
			if ok {
				o = prev.order
			}
			best[key] = scored{phrase: key, score: s, order: o}
		}
		order++
	}

	ranked := make([]scored, 0, len(best))
	maxScore := 0.0
	for _, s := range best {
		ranked = append(ranked, s)
		if s.score > maxScore {
			maxScore = s.score
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Keyword, len(ranked))
	for i, s := range ranked {
		out[i] = Keyword{Phrase: s.phrase, Score: s.score / maxScore}
	}
	return out
}

// candidatePhrases tokenizes text into lowercased words and splits them into
// phrases at stopwords and sentence punctuation.
func (e *rakeExtractor) candidatePhrases(text string, maxPhraseLen int) [][]string {
	var phrases [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}

	var word []rune
	endWord := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		word = word[:0]
		if e.stopwords[w] {
			flush()
			return
		}
		current = append(current, w)
		if maxPhraseLen > 0 && len(current) >= maxPhraseLen {
			flush()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			word = append(word, unicode.ToLower(r))
		case unicode.IsSpace(r):
			endWord()
		default:
			endWord()
			flush()
		}
	}
	endWord()
	flush()
	return phrases
}

var stopwordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "doing", "down", "during", "each", "few",
	"for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "him", "his", "how", "i", "if", "in", "into", "is", "it",
	"its", "itself", "just", "me", "more", "most", "my", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your", "yours",
}
