package feedback

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialit/quizfeedback/internal/quiz"
)

func TestValidateTemplates(t *testing.T) {
	require.NoError(t, ValidateTemplates())
}

func TestConstructDeterministicForFixedSeed(t *testing.T) {
	scores := []int{4, -2, 7, 0, 1, -5}

	t1, p1, err := New(scores, rand.New(rand.NewSource(42))).Construct()
	require.NoError(t, err)
	t2, p2, err := New(scores, rand.New(rand.NewSource(42))).Construct()
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Equal(t, p1, p2)
}

func TestConstructTextShape(t *testing.T) {
	scores := []int{4, -2, 7, 0, 1, -5}
	f := New(scores, rand.New(rand.NewSource(1)))

	text, page, err := f.Construct()
	require.NoError(t, err)
	require.NotEmpty(t, text)
	require.NotEmpty(t, page)

	// Opens with one of the intro phrasings and names the two strongest
	// outcomes joined by "and".
	found := false
	for _, intro := range defaultTemplates.intros {
		if strings.HasPrefix(text, intro) {
			found = true
			break
		}
	}
	assert.True(t, found, "text should open with an intro phrasing: %q", text)
	assert.Contains(t, text, " and ")

	assert.Contains(t, Pages(), page)
}

// The recommended page must always come from the weakest outcome's reading
// pool, for every possible outcome ranking.
func TestRecommendedPageTracksWeakestOutcome(t *testing.T) {
	base := []int{10, 8, 6, 4, 2, 0}
	rng := rand.New(rand.NewSource(7))

	permute(base, func(scores []int) {
		f := New(scores, rng)
		ranking := f.Ranking()
		worst := ranking[len(ranking)-1]

		_, page, err := f.Construct()
		require.NoError(t, err)

		allowed := map[string]bool{}
		for _, rec := range defaultTemplates.reading[worst] {
			allowed[rec.Page] = true
		}
		require.True(t, allowed[page], "scores %v: page %q not in weakest outcome %d pool", scores, page, worst)
	})
}

// permute calls fn with every permutation of values (Heap's algorithm).
func permute(values []int, fn func([]int)) {
	v := make([]int, len(values))
	copy(v, values)
	var rec func(k int)
	rec = func(k int) {
		if k == 1 {
			fn(v)
			return
		}
		for i := 0; i < k; i++ {
			rec(k - 1)
			if k%2 == 0 {
				v[i], v[k-1] = v[k-1], v[i]
			} else {
				v[0], v[k-1] = v[k-1], v[0]
			}
		}
	}
	rec(len(v))
}

func TestImprovementIntroBothForms(t *testing.T) {
	scores := []int{5, 4, 3, 2, 1, 0}

	// Drive the pool index deterministically through a fixed intn so both the
	// bracketing and single-clause intro forms are exercised.
	for idx, intro := range defaultTemplates.improvementIntros {
		i := idx
		f := newWithTemplates(scores, func(n int) int {
			if n == len(defaultTemplates.improvementIntros) {
				return i
			}
			return 0
		}, defaultTemplates)

		text, _, err := f.Construct()
		require.NoError(t, err)
		assert.Contains(t, text, intro.Prefix)
		if intro.Suffix != "" {
			assert.Contains(t, text, intro.Suffix)
		}
	}
}

func TestConstructMissingTemplate(t *testing.T) {
	broken := &templateSet{
		intros:            defaultTemplates.intros,
		outcomePhrasings:  map[int][]string{},
		improvementIntros: defaultTemplates.improvementIntros,
		advice:            defaultTemplates.advice,
		reading:           defaultTemplates.reading,
	}
	f := newWithTemplates([]int{1, 2, 3, 4, 5, 6}, func(int) int { return 0 }, broken)

	_, _, err := f.Construct()
	require.Error(t, err)
	assert.Equal(t, quiz.KindMissingTemplate, quiz.KindOf(err))
	assert.Error(t, broken.validate())
}

func TestPagesClosedSet(t *testing.T) {
	want := []string{
		"Real life examples",
		"The definition of fake news",
		"The existence of fake news/Biased Information",
		"The importance of identifying fake news",
		"Tips to spot fake news",
		"Tips to spot fake news/How can you spot biased news",
	}
	assert.ElementsMatch(t, want, Pages())
}
