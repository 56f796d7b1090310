package quiz

// Quiz is one respondent's in-flight set of question/answer pairs for a
// single scoring request. Instances are request-scoped and never shared; they
// are discarded after producing a score vector.
type Quiz struct {
	bank  *QuestionBank
	slots []slot
}

type slot struct {
	question *Question
	answer   any // int index or string text; nil until submitted
}

func NewQuiz(bank *QuestionBank) *Quiz {
	return &Quiz{bank: bank}
}

// AddQuestion appends a question slot with no answer yet. ref is a bank
// question id or a *Question.
func (z *Quiz) AddQuestion(ref any) error {
	q, err := z.resolve(ref)
	if err != nil {
		return err
	}
	z.slots = append(z.slots, slot{question: q})
	return nil
}

// AddAnswer records answer on the slot identified by ref: a question id, a
// *Question already on the quiz, or a slot index.
func (z *Quiz) AddAnswer(ref, answer any) error {
	idx := -1
	if i, ok := ref.(int); ok {
		if i < 0 || i >= len(z.slots) {
			return Errorf(KindUnknownQuestion, "no quiz slot at index %d", i)
		}
		idx = i
	} else {
		q, err := z.resolve(ref)
		if err != nil {
			return err
		}
		idx = z.indexOf(q)
		if idx < 0 {
			return Errorf(KindUnknownQuestion, "question is not on this quiz: %s", q.ID)
		}
	}
	z.slots[idx].answer = answer
	return nil
}

// Score sums the chosen answers' outcome-delta vectors into one length-6
// vector. It only reads quiz state, so repeated calls return the same result.
func (z *Quiz) Score() ([]int, error) {
	score := make([]int, NumOutcomes)
	for _, s := range z.slots {
		if s.answer == nil {
			return nil, Errorf(KindIncompleteQuiz, "not all quiz questions have answers")
		}
		deltas, err := s.question.OutcomeDeltasFor(s.answer)
		if err != nil {
			return nil, Errorf(KindInvalidAnswer,
				"for question %s, the answer %v is not valid: answers are indexed from 0 and must match a defined answer",
				s.question.ID, s.answer)
		}
		for i, d := range deltas {
			score[i] += d
		}
	}
	return score, nil
}

// Questions returns the quiz's questions in slot order.
func (z *Quiz) Questions() []*Question {
	out := make([]*Question, len(z.slots))
	for i := range z.slots {
		out[i] = z.slots[i].question
	}
	return out
}

func (z *Quiz) Len() int { return len(z.slots) }

func (z *Quiz) resolve(ref any) (*Question, error) {
	switch v := ref.(type) {
	case string:
		q, ok := z.bank.ByID(v)
		if !ok {
			return nil, Errorf(KindUnknownQuestion, "question id is not valid: %s", v)
		}
		return q, nil
	case *Question:
		return v, nil
	default:
		return nil, Errorf(KindUnknownQuestion, "invalid question reference type %T", ref)
	}
}

func (z *Quiz) indexOf(q *Question) int {
	for i := range z.slots {
		if z.slots[i].question == q {
			return i
		}
	}
	return -1
}
