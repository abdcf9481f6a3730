// Package quiz generates the diagnostic quiz, records and checks
// answers, and derives a proficiency result from them.
package quiz

import (
	"time"

	"github.com/hayashik/onramp/internal/profile"
)

// QuestionCount is the exact number of questions every quiz has after
// normalization.
const QuestionCount = 5

// ChoiceCount is the exact number of choices per question.
const ChoiceCount = 4

// choiceIDs are the fixed choice identifiers, assigned positionally.
var choiceIDs = [ChoiceCount]string{"A", "B", "C", "D"}

// Difficulty buckets a question or an overall result.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Choice is one answer option. IsCorrect is authoritative server-side
// state; it must never reach a client before submission — use Public
// projections for anything user-facing.
type Choice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is one quiz question. Exactly one choice has IsCorrect=true
// after normalization.
type Question struct {
	ID             string     `json:"id"`
	QuestionNumber int        `json:"questionNumber"`
	Technology     string     `json:"technology"`
	Difficulty     Difficulty `json:"difficulty"`
	QuestionText   string     `json:"questionText"`
	Choices        []Choice   `json:"choices"`
	Explanation    string     `json:"explanation"`
}

// CorrectChoiceID returns the id of the correct choice.
func (q *Question) CorrectChoiceID() string {
	for _, c := range q.Choices {
		if c.IsCorrect {
			return c.ID
		}
	}
	return ""
}

// Quiz is the persisted quiz document.
type Quiz struct {
	ID                 string     `json:"id"`
	TargetTechnologies []string   `json:"targetTechnologies"`
	CreatedAt          time.Time  `json:"createdAt"`
	Questions          []Question `json:"questions"`
}

// QuestionByID returns the question with the given id, or nil.
func (q *Quiz) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// PublicChoice is the client-facing projection of a choice. It has no
// correctness flag, making answer leakage structurally impossible.
type PublicChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// PublicQuestion is the client-facing projection of a question, without
// correctness flags or the explanation.
type PublicQuestion struct {
	ID             string         `json:"id"`
	QuestionNumber int            `json:"questionNumber"`
	Technology     string         `json:"technology"`
	Difficulty     Difficulty     `json:"difficulty"`
	QuestionText   string         `json:"questionText"`
	Choices        []PublicChoice `json:"choices"`
}

// Public returns the masked projection of all questions.
func (q *Quiz) Public() []PublicQuestion {
	out := make([]PublicQuestion, len(q.Questions))
	for i, question := range q.Questions {
		choices := make([]PublicChoice, len(question.Choices))
		for j, c := range question.Choices {
			choices[j] = PublicChoice{ID: c.ID, Text: c.Text}
		}
		out[i] = PublicQuestion{
			ID:             question.ID,
			QuestionNumber: question.QuestionNumber,
			Technology:     question.Technology,
			Difficulty:     question.Difficulty,
			QuestionText:   question.QuestionText,
			Choices:        choices,
		}
	}
	return out
}

// Answer is one recorded answer, keyed by question id. Recording twice
// replaces the previous answer for that question.
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedChoiceID string `json:"selectedChoiceId"`
	IsCorrect        bool   `json:"isCorrect"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
}

// AnswerSheet is the persisted answer document for one quiz.
type AnswerSheet struct {
	QuizID    string    `json:"quizId"`
	Answers   []Answer  `json:"answers"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnswerCheck is the pure-read evaluation of a submitted choice.
// Producing it records nothing: checking twice is side-effect-free.
type AnswerCheck struct {
	Correct         bool   `json:"correct"`
	CorrectChoiceID string `json:"correctChoiceId"`
	Explanation     string `json:"explanation"`
}

// Result is the persisted quiz-result document.
type Result struct {
	QuizID            string                   `json:"quizId"`
	Answers           []Answer                 `json:"answers"`
	ProficiencyLevels map[string]profile.Level `json:"proficiencyLevels"`
	OverallLevel      Difficulty               `json:"overallLevel"`
	OverallScore      float64                  `json:"overallScore"`
	CompletedAt       time.Time                `json:"completedAt"`
}
