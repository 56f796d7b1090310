// Package feedback turns a quiz score vector into a short natural-language
// feedback paragraph plus one recommended content-site page. The outcome
// ranking is fully determined by the scores; randomness only varies the
// wording picked from each phrase pool.
package feedback

import (
	"math/rand"
	"strings"

	"github.com/medialit/quizfeedback/internal/quiz"
)

// Feedback composes the result for one scored quiz. Instances are cheap and
// request-scoped.
type Feedback struct {
	scores    []int
	ranking   []int
	intn      func(n int) int
	templates *templateSet
}

// New ranks the score vector immediately. rng drives the phrasing choices
// only; pass nil to use the process-wide source.
func New(scores []int, rng *rand.Rand) *Feedback {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	return newWithTemplates(scores, intn, defaultTemplates)
}

func newWithTemplates(scores []int, intn func(int) int, ts *templateSet) *Feedback {
	return &Feedback{
		scores:    scores,
		ranking:   quiz.RankOutcomes(scores),
		intn:      intn,
		templates: ts,
	}
}

// Ranking returns the outcome indices ordered best to worst.
func (f *Feedback) Ranking() []int { return f.ranking }

// Construct builds the feedback text and the recommended page. The page is
// returned separately as structured data; callers must not parse it out of
// the text.
func (f *Feedback) Construct() (text, page string, err error) {
	best := f.ranking[0]
	second := f.ranking[1]
	worst := f.ranking[len(f.ranking)-1]

	first, err := f.outcomePhrasing(best)
	if err != nil {
		return "", "", err
	}
	next, err := f.outcomePhrasing(second)
	if err != nil {
		return "", "", err
	}
	weak, err := f.outcomePhrasing(worst)
	if err != nil {
		return "", "", err
	}
	advice, err := f.improvementAdvice(worst)
	if err != nil {
		return "", "", err
	}
	rec, err := f.recommendedReading(worst)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	b.WriteString(f.pick(f.templates.intros))
	b.WriteString(" ")
	b.WriteString(first)
	b.WriteString(" and ")
	b.WriteString(next)
	b.WriteString(".  ")

	intro := f.templates.improvementIntros[f.intn(len(f.templates.improvementIntros))]
	if intro.Suffix != "" {
		b.WriteString(intro.Prefix)
		b.WriteString(" ")
		b.WriteString(weak)
		b.WriteString(" ")
		b.WriteString(intro.Suffix)
	} else {
		b.WriteString(intro.Prefix)
		b.WriteString(" ")
		b.WriteString(weak)
	}
	b.WriteString(". ")
	b.WriteString(advice)
	b.WriteString("\n")
	b.WriteString(rec.Text)

	return b.String(), rec.Page, nil
}

func (f *Feedback) pick(pool []string) string {
	return pool[f.intn(len(pool))]
}

func (f *Feedback) outcomePhrasing(outcome int) (string, error) {
	pool, ok := f.templates.outcomePhrasings[outcome]
	if !ok || len(pool) == 0 {
		return "", quiz.Errorf(quiz.KindMissingTemplate, "no phrasing templates for outcome %d", outcome)
	}
	return f.pick(pool), nil
}

func (f *Feedback) improvementAdvice(outcome int) (string, error) {
	pool, ok := f.templates.advice[outcome]
	if !ok || len(pool) == 0 {
		return "", quiz.Errorf(quiz.KindMissingTemplate, "no advice templates for outcome %d", outcome)
	}
	return f.pick(pool), nil
}

func (f *Feedback) recommendedReading(outcome int) (Recommendation, error) {
	pool, ok := f.templates.reading[outcome]
	if !ok || len(pool) == 0 {
		return Recommendation{}, quiz.Errorf(quiz.KindMissingTemplate, "no reading templates for outcome %d", outcome)
	}
	return pool[f.intn(len(pool))], nil
}

// ValidateTemplates checks that every phrase pool covers all six outcomes.
// Run once at startup; a failure means the authored templates are broken and
// the process should not serve requests.
func ValidateTemplates() error {
	return defaultTemplates.validate()
}

func (ts *templateSet) validate() error {
	if len(ts.intros) == 0 {
		return quiz.Errorf(quiz.KindMissingTemplate, "intro pool is empty")
	}
	if len(ts.improvementIntros) == 0 {
		return quiz.Errorf(quiz.KindMissingTemplate, "improvement-intro pool is empty")
	}
	for i := 0; i < quiz.NumOutcomes; i++ {
		if len(ts.outcomePhrasings[i]) == 0 {
			return quiz.Errorf(quiz.KindMissingTemplate, "no phrasing templates for outcome %d", i)
		}
		if len(ts.advice[i]) == 0 {
			return quiz.Errorf(quiz.KindMissingTemplate, "no advice templates for outcome %d", i)
		}
		if len(ts.reading[i]) == 0 {
			return quiz.Errorf(quiz.KindMissingTemplate, "no reading templates for outcome %d", i)
		}
	}
	return nil
}

// Pages returns the closed set of page names the reading pools can recommend.
func Pages() []string {
	seen := map[string]bool{}
	var out []string
	for i := 0; i < quiz.NumOutcomes; i++ {
		for _, rec := range defaultTemplates.reading[i] {
			if !seen[rec.Page] {
				seen[rec.Page] = true
				out = append(out, rec.Page)
			}
		}
	}
	return out
}
