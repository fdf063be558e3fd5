package app

import (
	"fmt"
	"math/rand"

	"opentdb-quiz/internal/domain"
)

// QuestionStore owns one retrieved batch and the cursor/score over it.
// Invariants: 0 <= index <= len(questions) and correct <= index.
type QuestionStore struct {
	questions []domain.Question
	index     int
	correct   int
}

// NewQuestionStore copies the batch so later mutation by the caller cannot leak in.
func NewQuestionStore(questions []domain.Question) *QuestionStore {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &QuestionStore{questions: qs}
}

func (s *QuestionStore) Len() int { return len(s.questions) }
func (s *QuestionStore) Index() int { return s.index }
func (s *QuestionStore) Correct() int { return s.correct }

// IsEnd reports whether every question has been answered.
func (s *QuestionStore) IsEnd() bool {
	return s.index >= len(s.questions)
}

// Current returns the question under the cursor.
func (s *QuestionStore) Current() (domain.Question, error) {
	if s.IsEnd() {
		return domain.Question{}, domain.ErrSessionFinished
	}
	return s.questions[s.index], nil
}

// Selection builds the answer list for the current question. Boolean questions always
// get True/False; otherwise the decoded answers are shuffled with rnd.
func (s *QuestionStore) Selection(rnd *rand.Rand) ([]string, error) {
	q, err := s.Current()
	if err != nil {
		return nil, err
	}
	if q.IsBoolean() {
		return []string{"True", "False"}, nil
	}

	selection := make([]string, 0, len(q.IncorrectAnswers)+1)
	for _, answer := range q.IncorrectAnswers {
		selection = append(selection, domain.DecodeEntities(answer))
	}
	selection = append(selection, domain.DecodeEntities(q.CorrectAnswer))
	rnd.Shuffle(len(selection), func(i, j int) {
		selection[i], selection[j] = selection[j], selection[i]
	})
	return selection, nil
}

// Answer scores text against the decoded correct answer and advances the cursor.
func (s *QuestionStore) Answer(text string) (bool, error) {
	q, err := s.Current()
	if err != nil {
		return false, err
	}
	correct := domain.DecodeEntities(q.CorrectAnswer) == text
	if correct {
		s.correct++
	}
	s.index++
	return correct, nil
}

// Score renders "<correct>/<total>".
func (s *QuestionStore) Score() string {
	return fmt.Sprintf("%d/%d", s.correct, len(s.questions))
}
