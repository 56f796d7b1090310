package http

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/medialit/quizfeedback/internal/feedback"
	"github.com/medialit/quizfeedback/internal/quiz"
)

// flatQuestionCount is the number of q{N}/a{N} pairs in the legacy payload
// shape still sent by the quiz frontend.
const flatQuestionCount = 8

type feedbackRequest struct {
	Questions []string
	Answers   []any // int index or exact answer text per question
}

type feedbackResponse struct {
	ResponseID    string `json:"response_id"`
	Feedback      string `json:"feedback"`
	SuggestedPage string `json:"suggested_page"`
}

// QuizFeedbackHandler scores a submitted quiz against the bank and returns
// the composed feedback plus the recommended page. rng varies the feedback
// wording only; nil uses the process-wide source. rand.Rand is not safe for
// concurrent use, so each request draws its own generator from the shared
// parent under a lock.
func QuizFeedbackHandler(bank *quiz.QuestionBank, rng *rand.Rand) http.HandlerFunc {
	var mu sync.Mutex
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeFeedbackRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}

		seen := make(map[string]bool, len(req.Questions))
		for _, id := range req.Questions {
			if seen[id] {
				writeQuizError(w, quiz.Errorf(quiz.KindDuplicateQuestion,
					"duplicate question id in request: %s; feedback requires every question to appear at most once", id))
				return
			}
			seen[id] = true
		}

		z := quiz.NewQuiz(bank)
		for i, id := range req.Questions {
			if err := z.AddQuestion(id); err != nil {
				writeQuizError(w, err)
				return
			}
			if err := z.AddAnswer(i, req.Answers[i]); err != nil {
				writeQuizError(w, err)
				return
			}
		}

		score, err := z.Score()
		if err != nil {
			writeQuizError(w, err)
			return
		}

		var reqRNG *rand.Rand
		if rng != nil {
			mu.Lock()
			reqRNG = rand.New(rand.NewSource(rng.Int63()))
			mu.Unlock()
		}

		text, page, err := feedback.New(score, reqRNG).Construct()
		if err != nil {
			writeQuizError(w, err)
			return
		}

		writeJSON(w, feedbackResponse{
			ResponseID:    uuid.NewString(),
			Feedback:      text,
			SuggestedPage: page,
		})
	}
}

// decodeFeedbackRequest validates the payload shape up front and accepts two
// forms: {"questions": [...], "answers": [...]} with parallel arrays, or the
// flat legacy form q1..q8 / a1..a8.
func decodeFeedbackRequest(r *http.Request) (*feedbackRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bad json: %w", err)
	}

	if qs, ok := raw["questions"]; ok {
		var ids []string
		if err := json.Unmarshal(qs, &ids); err != nil {
			return nil, fmt.Errorf(`"questions" must be an array of question ids: %w`, err)
		}
		as, ok := raw["answers"]
		if !ok {
			return nil, fmt.Errorf(`missing "answers" array`)
		}
		var rawAnswers []json.RawMessage
		if err := json.Unmarshal(as, &rawAnswers); err != nil {
			return nil, fmt.Errorf(`"answers" must be an array: %w`, err)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf(`"questions" must not be empty`)
		}
		if len(ids) != len(rawAnswers) {
			return nil, fmt.Errorf(`"questions" and "answers" must have the same length (got %d and %d)`,
				len(ids), len(rawAnswers))
		}
		req := &feedbackRequest{Questions: ids, Answers: make([]any, len(rawAnswers))}
		for i, ra := range rawAnswers {
			a, err := coerceAnswer(ra)
			if err != nil {
				return nil, fmt.Errorf("answer %d: %w", i+1, err)
			}
			req.Answers[i] = a
		}
		return req, nil
	}

	// Flat form: q1..q8 are bank question ids, a1..a8 the chosen answers
	// (zero-indexed integers or exact answer text).
	req := &feedbackRequest{}
	for i := 1; i <= flatQuestionCount; i++ {
		qKey := fmt.Sprintf("q%d", i)
		aKey := fmt.Sprintf("a%d", i)
		qRaw, ok := raw[qKey]
		if !ok {
			return nil, fmt.Errorf("missing field %q: the payload needs %d question/answer pairs, q1..q%d and a1..a%d",
				qKey, flatQuestionCount, flatQuestionCount, flatQuestionCount)
		}
		aRaw, ok := raw[aKey]
		if !ok {
			return nil, fmt.Errorf("missing field %q: every question needs a matching answer", aKey)
		}
		var id string
		if err := json.Unmarshal(qRaw, &id); err != nil {
			return nil, fmt.Errorf("field %q must be a question id string: %w", qKey, err)
		}
		a, err := coerceAnswer(aRaw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", aKey, err)
		}
		req.Questions = append(req.Questions, id)
		req.Answers = append(req.Answers, a)
	}
	return req, nil
}

func coerceAnswer(raw json.RawMessage) (any, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		i := int(n)
		if float64(i) != n {
			return nil, fmt.Errorf("answer index must be a whole number, got %v", n)
		}
		return i, nil
	}
	return nil, fmt.Errorf("answer must be an integer index (from 0) or exact answer text")
}
