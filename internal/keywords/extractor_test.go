package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "Fake news spreads quickly on social media. " +
	"Checking multiple sources helps readers spot fake news and biased reporting. " +
	"Social media platforms amplify sensational headlines."

func TestExtractRankedAndNormalized(t *testing.T) {
	ex := NewRAKE()
	kws := ex.Extract(sampleDoc, 0, DefaultTopN)
	require.NotEmpty(t, kws)
	assert.LessOrEqual(t, len(kws), DefaultTopN)

	assert.Equal(t, 1.0, kws[0].Score)
	for i, kw := range kws {
		assert.NotEmpty(t, kw.Phrase)
		assert.Greater(t, kw.Score, 0.0)
		assert.LessOrEqual(t, kw.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, kws[i-1].Score, kw.Score)
		}
	}
}

func TestExtractMultiWordPhrases(t *testing.T) {
	ex := NewRAKE()
	kws := ex.Extract(sampleDoc, 0, DefaultTopN)

	phrases := make([]string, len(kws))
	for i, kw := range kws {
		phrases[i] = kw.Phrase
	}
	assert.Contains(t, phrases, "social media")
}

func TestExtractRespectsMaxPhraseLen(t *testing.T) {
	ex := NewRAKE()
	for _, kw := range ex.Extract(sampleDoc, 1, DefaultTopN) {
		assert.Len(t, strings.Fields(kw.Phrase), 1, "phrase %q", kw.Phrase)
	}
	for _, kw := range ex.Extract(sampleDoc, 2, DefaultTopN) {
		assert.LessOrEqual(t, len(strings.Fields(kw.Phrase)), 2, "phrase %q", kw.Phrase)
	}
}

func TestExtractTopN(t *testing.T) {
	ex := NewRAKE()
	kws := ex.Extract(sampleDoc, 0, 2)
	assert.LessOrEqual(t, len(kws), 2)
}

func TestExtractStopwordOnlyText(t *testing.T) {
	ex := NewRAKE()
	assert.Empty(t, ex.Extract("the and of to with", 0, DefaultTopN))
	assert.Empty(t, ex.Extract("", 0, DefaultTopN))
}

func TestExtractDeduplicatesPhrases(t *testing.T) {
	ex := NewRAKE()
	kws := ex.Extract("fake news. fake news. fake news.", 0, DefaultTopN)
	require.Len(t, kws, 1)
	assert.Equal(t, "fake news", kws[0].Phrase)
}
