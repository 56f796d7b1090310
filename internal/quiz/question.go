package quiz

import (
	"crypto/sha256"
	"encoding/hex"
)

// Answer is one selectable option on a question. Deltas quantify the learning
// impact of choosing it, one signed value per outcome dimension.
type Answer struct {
	Text    string
	Correct bool
	Deltas  []int
}

// Question is a single authored question: display text, a free-form type tag
// (e.g. "MCS", "Fake Article") and an ordered list of answers, at most one of
// which is correct. Deltas are kept per answer position, so two answers with
// identical display text keep separate vectors.
type Question struct {
	ID      string
	Text    string
	Type    string
	Answers []Answer

	correct int
}

// NewQuestion creates a question. When id is empty it is derived from the
// question text with a fixed content hash, so identical text yields the same
// id across runs and processes.
func NewQuestion(text, questionType, id string) *Question {
	if id == "" {
		id = deriveID(text)
	}
	return &Question{ID: id, Text: text, Type: questionType, correct: -1}
}

func deriveID(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "q-" + hex.EncodeToString(sum[:6])
}

// AddAnswer appends an answer. The delta vector must have exactly NumOutcomes
// entries, and only one answer per question may be marked correct.
func (q *Question) AddAnswer(text string, correct bool, deltas []int) error {
	if len(deltas) != NumOutcomes {
		return Errorf(KindConfiguration,
			"question %s: answer %q: outcome vector has %d entries, want %d",
			q.ID, text, len(deltas), NumOutcomes)
	}
	if correct && q.correct >= 0 {
		return Errorf(KindConfiguration, "question %s: only one answer can be correct", q.ID)
	}
	if correct {
		q.correct = len(q.Answers)
	}
	d := make([]int, NumOutcomes)
	copy(d, deltas)
	q.Answers = append(q.Answers, Answer{Text: text, Correct: correct, Deltas: d})
	return nil
}

// OutcomeDeltasFor resolves ref, an answer index or exact answer text, to
// that answer's outcome-delta vector.
func (q *Question) OutcomeDeltasFor(ref any) ([]int, error) {
	switch v := ref.(type) {
	case int:
		if v < 0 || v >= len(q.Answers) {
			return nil, Errorf(KindAnswerNotFound, "question %s has no answer at index %d", q.ID, v)
		}
		return q.Answers[v].Deltas, nil
	case string:
		for i := range q.Answers {
			if q.Answers[i].Text == v {
				return q.Answers[i].Deltas, nil
			}
		}
		return nil, Errorf(KindAnswerNotFound, "question %s has no answer %q", q.ID, v)
	default:
		return nil, Errorf(KindAnswerNotFound, "question %s: unsupported answer reference type %T", q.ID, ref)
	}
}

// CorrectIndex reports the index of the correct answer, -1 if none is set.
func (q *Question) CorrectIndex() int { return q.correct }

func (q *Question) NumAnswers() int { return len(q.Answers) }
