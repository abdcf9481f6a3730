package quiz

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hayashik/onramp/internal/curriculum"
	"github.com/hayashik/onramp/internal/llm"
)

// quizOutput mirrors the JSON shape requested from the model.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Technology   string         `json:"technology"`
	Difficulty   string         `json:"difficulty"`
	QuestionText string         `json:"questionText"`
	Choices      []choiceOutput `json:"choices"`
	Explanation  string         `json:"explanation"`
}

type choiceOutput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Parse runs the two-stage pipeline on raw model output: extract the
// fenced block and validate it strictly, then repair the result into a
// well-formed quiz. technologies are the detected target technologies,
// recorded on the document and used for placeholder questions.
func Parse(text string, technologies []string, now time.Time) (*Quiz, error) {
	raw, err := curriculum.ExtractFencedJSON(text)
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateAgainst(Schema, raw); err != nil {
		return nil, err
	}

	var out quizOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse quiz JSON: %w", err)
	}

	return normalize(&out, technologies, now), nil
}

// normalize builds the persisted document. Every question gets a fresh
// unique id and a dense 1-based questionNumber, choice ids are forced to
// the fixed A-D sequence, each question is repaired to have exactly one
// correct choice, and the question list is truncated or padded with
// placeholders to exactly QuestionCount entries.
func normalize(out *quizOutput, technologies []string, now time.Time) *Quiz {
	doc := &Quiz{
		ID:                 uuid.NewString(),
		TargetTechnologies: technologies,
		CreatedAt:          now,
	}
	if doc.TargetTechnologies == nil {
		doc.TargetTechnologies = []string{}
	}

	questions := out.Questions
	if len(questions) > QuestionCount {
		questions = questions[:QuestionCount]
	}
	for _, q := range questions {
		doc.Questions = append(doc.Questions, normalizeQuestion(q))
	}
	for len(doc.Questions) < QuestionCount {
		doc.Questions = append(doc.Questions, placeholderQuestion(technologies))
	}
	for i := range doc.Questions {
		doc.Questions[i].QuestionNumber = i + 1
	}

	return doc
}

func normalizeQuestion(out questionOutput) Question {
	q := Question{
		ID:           uuid.NewString(),
		Technology:   out.Technology,
		Difficulty:   normalizeDifficulty(out.Difficulty),
		QuestionText: out.QuestionText,
		Explanation:  out.Explanation,
	}

	choices := out.Choices
	if len(choices) > ChoiceCount {
		choices = choices[:ChoiceCount]
	}
	for i, c := range choices {
		q.Choices = append(q.Choices, Choice{
			ID:        choiceIDs[i],
			Text:      c.Text,
			IsCorrect: c.IsCorrect,
		})
	}
	for len(q.Choices) < ChoiceCount {
		q.Choices = append(q.Choices, Choice{
			ID:   choiceIDs[len(q.Choices)],
			Text: "None of the above",
		})
	}

	repairCorrectness(q.Choices)
	return q
}

// repairCorrectness enforces the exactly-one-correct invariant: with no
// correct choice the first is forced correct, with several the first
// encountered is kept and the rest cleared. The repair is deterministic
// so repeated parses of the same response agree.
func repairCorrectness(choices []Choice) {
	seen := false
	for i := range choices {
		if !choices[i].IsCorrect {
			continue
		}
		if seen {
			choices[i].IsCorrect = false
			continue
		}
		seen = true
	}
	if !seen {
		choices[0].IsCorrect = true
	}
}

func normalizeDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s)
	}
	return DifficultyBeginner
}

// placeholderQuestion pads a short quiz up to the required count. The
// first choice is correct so the exactly-one-correct invariant holds.
func placeholderQuestion(technologies []string) Question {
	tech := "General"
	if len(technologies) > 0 {
		tech = technologies[0]
	}
	return Question{
		ID:           uuid.NewString(),
		Technology:   tech,
		Difficulty:   DifficultyBeginner,
		QuestionText: fmt.Sprintf("Have you worked with %s before?", tech),
		Choices: []Choice{
			{ID: "A", Text: "Yes, regularly", IsCorrect: true},
			{ID: "B", Text: "Occasionally"},
			{ID: "C", Text: "Only read about it"},
			{ID: "D", Text: "Never"},
		},
		Explanation: "Self-assessment question.",
	}
}
