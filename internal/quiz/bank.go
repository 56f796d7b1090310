package quiz

// QuestionBank is the catalog of authored questions. It is built once at
// startup and only read afterwards, so it may be shared across concurrent
// requests without locking.
type QuestionBank struct {
	questions []*Question
	byID      map[string]*Question
}

func NewQuestionBank() *QuestionBank {
	return &QuestionBank{byID: map[string]*Question{}}
}

// AddQuestion appends q to the ordered catalog and indexes it by id.
// Duplicate ids are not rejected; the newest entry wins on lookup.
func (b *QuestionBank) AddQuestion(q *Question) {
	b.questions = append(b.questions, q)
	b.byID[q.ID] = q
}

// ByIndex returns the question at position i in authoring order, nil if out
// of range.
func (b *QuestionBank) ByIndex(i int) *Question {
	if i < 0 || i >= len(b.questions) {
		return nil
	}
	return b.questions[i]
}

// ByID looks up a question by id. Unknown ids report ok=false rather than an
// error; callers treat the miss as their own reportable condition.
func (b *QuestionBank) ByID(id string) (*Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// AllQuestions returns the full catalog in authoring order.
func (b *QuestionBank) AllQuestions() []*Question {
	out := make([]*Question, len(b.questions))
	copy(out, b.questions)
	return out
}

func (b *QuestionBank) Len() int { return len(b.questions) }
