// Package content holds the static authored quiz: the question bank and its
// per-answer learning-outcome vectors. Text mirrors the published quiz
// content verbatim.
package content

import "github.com/medialit/quizfeedback/internal/quiz"

type authoredAnswer struct {
	text    string
	correct bool
	deltas  []int
}

type authoredQuestion struct {
	id      string
	qtype   string
	text    string
	answers []authoredAnswer
}

var authored = []authoredQuestion{
	{
		id: "MC1", qtype: "MCS",
		text: "Which of the following is an effective way to spot fake news",
		answers: []authoredAnswer{
			{"Believing every article you read", false, []int{-3, -1, -1, -5, -5, 0}},
			{"Checking multiple sources for accuracy", true, []int{2, 0, 1, 3, 3, 2}},
			{"Sharing articles without reading them", false, []int{-1, -1, -1, -2, -2, -5}},
		},
	},
	{
		id: "MC2", qtype: "MCS",
		text: "Which of the following is a reliable source for news?",
		answers: []authoredAnswer{
			{"Your friend's blog", false, []int{-1, -1, -1, -2, -1, -1}},
			{"A well established newspaper", true, []int{0, 0, 0, 0, 2, 0}},
			{"A random website with no credentials or background information", false, []int{-2, -3, -1, -2, 2, -1}},
		},
	},
	{
		id: "MC3", qtype: "MCS",
		text: "Which of the following is an example of a fact-checking website?",
		answers: []authoredAnswer{
			{"Twitter", false, []int{-5, -3, -5, -4, -4, -2}},
			{"Snopes", true, []int{5, 4, 5, 3, 3, 0}},
			{"Reddit", false, []int{-5, -3, -5, -4, -4, -2}},
		},
	},
	{
		id: "MC4", qtype: "MCS",
		text: "Which of the following should you do if you suspect an article is fake news?",
		answers: []authoredAnswer{
			{"Share the article on social media to warn others", false, []int{-1, -1, -2, -1, -1, -5}},
			{"Ignore the article and move on", false, []int{0, 0, 0, 0, 0, 0}},
			{"Research the topic and look for credible sources to verify information", true, []int{0, 0, 0, 0, 0, -5}},
		},
	},
	{
		id: "MC5", qtype: "MCS",
		text: "Which of the following is an example of a reliable source for politcal news?",
		answers: []authoredAnswer{
			{"A partesian political blog that only covers one side of the political spectrum", false, []int{0, -4, -5, 0, 0, -2}},
			{"A well-respected news outlet that has a reputation for unbias reporting", true, []int{0, 4, 5, 0, 0, 0}},
			{"A random website with no credentials or background information", false, []int{0, -2, -3, 0, 0, -2}},
		},
	},
	{
		id: "MC6", qtype: "MCS",
		text: "Which of the following is a common red flag that may indicate a news article is fake?",
		answers: []authoredAnswer{
			{"The article uses proper grammar and punctuation.", false, []int{0, 0, -2, -5, -5, 0}},
			{"The article contains quotes from credible sources", false, []int{-3, -1, 0, -4, -4, -1}},
			{"The article includes a sensational or clickbait headline", true, []int{2, 2, 3, 3, 3, 0}},
		},
	},
	{
		id: "MC7", qtype: "MCS",
		text: "Which of the following headlines is most likely to be fake news?",
		answers: []authoredAnswer{
			{"Study shows that coffee can reduce the risk of cancer.", false, []int{-5, -2, 0, -4, 0, -1}},
			{"Alien spaceship found on Mars", true, []int{3, 2, 1, 5, 4, 0}},
			{"New survey reveals that 70% of people prefer ice cream over cake.", false, []int{4, 5, 5, 2, 1, 0}},
		},
	},
	{
		id: "MC8", qtype: "MCS",
		text: "Which of the following is a common technique used in fake news articles to manipulate readers?",
		answers: []authoredAnswer{
			{"Using credible sources and providing factual information.", false, []int{-5, -4, 0, -2, -1, 0}},
			{"Using emotional language and appealing to readers' emotions.", true, []int{3, 2, 5, 5, 2, 0}},
			{"Using objective language and presenting multiple viewpoints.", false, []int{0, 5, 5, 3, 3, 4}},
		},
	},
	{
		id: "A1", qtype: "Fake Article",
		text: "Which article below could be fake?",
		answers: []authoredAnswer{
			{"Article 1", false, []int{-5, 0, 0, -2, -2, 0}},
			{"Article 2", true, []int{2, 0, 0, 3, 0, 0}},
		},
	},
	{
		id: "A2", qtype: "Fake Article",
		text: "Which article below could be fake?",
		answers: []authoredAnswer{
			{"Article 1", true, []int{3, 0, 0, 3, 1, 1}},
			{"Article 2", false, []int{-3, 0, 0, -4, 1, -1}},
		},
	},
	{
		id: "A3", qtype: "Fake Article",
		text: "Which article below could be fake?",
		answers: []authoredAnswer{
			{"Article 1", true, []int{2, 0, 0, 4, 1, 0}},
			{"Article 2", false, []int{-1, 0, 0, -2, -1, -1}},
		},
	},
}

// BuildBank assembles the question bank from the authored content above.
// Any error here means the static content violates a structural invariant
// and the process should not start.
func BuildBank() (*quiz.QuestionBank, error) {
	bank := quiz.NewQuestionBank()
	for _, aq := range authored {
		q := quiz.NewQuestion(aq.text, aq.qtype, aq.id)
		for _, a := range aq.answers {
			if err := q.AddAnswer(a.text, a.correct, a.deltas); err != nil {
				return nil, err
			}
		}
		bank.AddQuestion(q)
	}
	return bank, nil
}
