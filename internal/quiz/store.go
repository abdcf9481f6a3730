package quiz

import (
	"time"

	"github.com/hayashik/onramp/internal/state"
)

// Store owns the quiz document and its dependent answer and result
// documents. All mutations are full load-modify-save cycles over single
// JSON files.
type Store struct {
	quizPath    string
	answersPath string
	resultPath  string
	now         func() time.Time
}

// NewStore creates a Store rooted at the given workspace.
func NewStore(workspaceRoot string) *Store {
	return &Store{
		quizPath:    state.Path(workspaceRoot, state.QuizFile),
		answersPath: state.Path(workspaceRoot, state.QuizAnswersFile),
		resultPath:  state.Path(workspaceRoot, state.QuizResultFile),
		now:         time.Now,
	}
}

// Save persists the quiz document.
func (s *Store) Save(q *Quiz) error {
	return state.WriteJSON(s.quizPath, q)
}

// Load returns the persisted quiz. A missing or unreadable document
// reports exists=false.
func (s *Store) Load() (*Quiz, bool) {
	var q Quiz
	ok, _ := state.ReadJSON(s.quizPath, &q)
	if !ok {
		return nil, false
	}
	return &q, true
}

// Exists reports whether a quiz document is present.
func (s *Store) Exists() bool {
	return state.Exists(s.quizPath)
}

// Delete removes the quiz and cascade-clears its dependent answer and
// result documents (they reference question ids that no longer exist).
func (s *Store) Delete() error {
	if err := state.Remove(s.quizPath); err != nil {
		return err
	}
	if err := state.Remove(s.answersPath); err != nil {
		return err
	}
	return state.Remove(s.resultPath)
}

// LoadAnswers returns the persisted answer sheet. A missing or
// unreadable document reports exists=false.
func (s *Store) LoadAnswers() (*AnswerSheet, bool) {
	var sheet AnswerSheet
	ok, _ := state.ReadJSON(s.answersPath, &sheet)
	if !ok {
		return nil, false
	}
	return &sheet, true
}

// RecordAnswer grades the selected choice against the stored quiz and
// records it on the answer sheet, replacing any earlier answer for the
// same question. It returns (nil, nil) when no quiz exists or the
// question id is unknown: a no-op, not an error.
func (s *Store) RecordAnswer(questionID, choiceID string, timeSpentSeconds int) (*Answer, error) {
	quiz, ok := s.Load()
	if !ok {
		return nil, nil
	}
	question := quiz.QuestionByID(questionID)
	if question == nil {
		return nil, nil
	}

	answer := Answer{
		QuestionID:       questionID,
		SelectedChoiceID: choiceID,
		IsCorrect:        choiceID == question.CorrectChoiceID(),
		TimeSpentSeconds: timeSpentSeconds,
	}

	sheet, ok := s.LoadAnswers()
	if !ok || sheet.QuizID != quiz.ID {
		sheet = &AnswerSheet{QuizID: quiz.ID}
	}

	replaced := false
	for i := range sheet.Answers {
		if sheet.Answers[i].QuestionID == questionID {
			sheet.Answers[i] = answer
			replaced = true
			break
		}
	}
	if !replaced {
		sheet.Answers = append(sheet.Answers, answer)
	}
	sheet.UpdatedAt = s.now()

	if err := state.WriteJSON(s.answersPath, sheet); err != nil {
		return nil, err
	}
	return &answer, nil
}

// CheckAnswer evaluates a choice against the stored quiz without
// recording anything. It returns (nil, nil) when no quiz exists or the
// question id is unknown.
func (s *Store) CheckAnswer(questionID, choiceID string) (*AnswerCheck, error) {
	quiz, ok := s.Load()
	if !ok {
		return nil, nil
	}
	question := quiz.QuestionByID(questionID)
	if question == nil {
		return nil, nil
	}
	correct := question.CorrectChoiceID()
	return &AnswerCheck{
		Correct:         choiceID == correct,
		CorrectChoiceID: correct,
		Explanation:     question.Explanation,
	}, nil
}

// SaveResult persists the quiz result document.
func (s *Store) SaveResult(r *Result) error {
	return state.WriteJSON(s.resultPath, r)
}

// LoadResult returns the persisted quiz result. A missing or unreadable
// document reports exists=false.
func (s *Store) LoadResult() (*Result, bool) {
	var r Result
	ok, _ := state.ReadJSON(s.resultPath, &r)
	if !ok {
		return nil, false
	}
	return &r, true
}
