package http

import (
	"net/http"

	"github.com/medialit/quizfeedback/internal/quiz"
)

type publicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Answers  []string `json:"answers"`
}

// ListQuestionsHandler serves the bank for rendering the quiz. Correct-answer
// flags and outcome vectors are stripped; respondents never see them.
func ListQuestionsHandler(bank *quiz.QuestionBank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs := bank.AllQuestions()
		out := make([]publicQuestion, 0, len(qs))
		for _, q := range qs {
			answers := make([]string, 0, len(q.Answers))
			for _, a := range q.Answers {
				answers = append(answers, a.Text)
			}
			out = append(out, publicQuestion{
				ID:       q.ID,
				Question: q.Text,
				Type:     q.Type,
				Answers:  answers,
			})
		}
		writeJSON(w, out)
	}
}
