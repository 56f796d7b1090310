package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAnswerRejectsSecondCorrect(t *testing.T) {
	q := NewQuestion("Which source is reliable?", "MCS", "T1")
	require.NoError(t, q.AddAnswer("a blog", false, []int{0, 0, 0, 0, 0, 0}))
	require.NoError(t, q.AddAnswer("a newspaper", true, []int{1, 0, 0, 0, 0, 0}))

	err := q.AddAnswer("a fact checker", true, []int{2, 0, 0, 0, 0, 0})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Equal(t, 1, q.CorrectIndex())
	assert.Equal(t, 2, q.NumAnswers())
}

func TestAddAnswerRejectsSecondCorrectRegardlessOfOrder(t *testing.T) {
	q := NewQuestion("Which source is reliable?", "MCS", "T1")
	require.NoError(t, q.AddAnswer("a newspaper", true, []int{1, 0, 0, 0, 0, 0}))
	require.NoError(t, q.AddAnswer("a blog", false, []int{0, 0, 0, 0, 0, 0}))

	err := q.AddAnswer("a fact checker", true, []int{2, 0, 0, 0, 0, 0})
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestAddAnswerRejectsWrongLengthVector(t *testing.T) {
	q := NewQuestion("Which source is reliable?", "MCS", "T1")
	for _, deltas := range [][]int{nil, {1}, {1, 2, 3, 4, 5}, {1, 2, 3, 4, 5, 6, 7}} {
		err := q.AddAnswer("x", false, deltas)
		require.Error(t, err)
		assert.Equal(t, KindConfiguration, KindOf(err))
	}
	assert.Equal(t, 0, q.NumAnswers())
}

func TestOutcomeDeltasFor(t *testing.T) {
	q := NewQuestion("pick one", "MCS", "T2")
	require.NoError(t, q.AddAnswer("first", false, []int{1, 1, 1, 1, 1, 1}))
	require.NoError(t, q.AddAnswer("second", true, []int{2, 2, 2, 2, 2, 2}))

	byIndex, err := q.OutcomeDeltasFor(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, byIndex)

	byText, err := q.OutcomeDeltasFor("first")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, byText)

	_, err = q.OutcomeDeltasFor(5)
	require.Error(t, err)
	assert.Equal(t, KindAnswerNotFound, KindOf(err))

	_, err = q.OutcomeDeltasFor("third")
	require.Error(t, err)
	assert.Equal(t, KindAnswerNotFound, KindOf(err))
}

// Deltas are keyed by answer position, so two answers with identical display
// text keep their own vectors.
func TestDuplicateAnswerTextKeepsBothVectors(t *testing.T) {
	q := NewQuestion("Which article below could be fake?", "Fake Article", "T3")
	require.NoError(t, q.AddAnswer("Article", false, []int{-1, 0, 0, 0, 0, 0}))
	require.NoError(t, q.AddAnswer("Article", true, []int{3, 0, 0, 0, 0, 0}))

	first, err := q.OutcomeDeltasFor(0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 0, 0, 0, 0}, first)

	second, err := q.OutcomeDeltasFor(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 0, 0, 0, 0}, second)
}

func TestDerivedIDStable(t *testing.T) {
	a := NewQuestion("What is fake news?", "MCS", "")
	b := NewQuestion("What is fake news?", "MCS", "")
	c := NewQuestion("What is biased news?", "MCS", "")

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestExplicitIDWins(t *testing.T) {
	q := NewQuestion("What is fake news?", "MCS", "MC1")
	assert.Equal(t, "MC1", q.ID)
}
