package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced technical interviewer who writes diagnostic multiple-choice questions. Your questions probe practical working knowledge, not trivia.`

// buildUserMessage renders the generation prompt. It is deterministic
// given its inputs: the same technology list always produces the same
// prompt text.
func buildUserMessage(technologies []string) string {
	var b strings.Builder

	b.WriteString("# Target technologies\n")
	for _, tech := range technologies {
		fmt.Fprintf(&b, "- %s\n", tech)
	}

	fmt.Fprintf(&b, `
# Instructions
Write exactly %d multiple-choice questions assessing familiarity with the technologies above:
1. Spread questions across the listed technologies; each question names its technology.
2. Each question has exactly %d choices with exactly one correct answer.
3. Mix difficulties: at least one beginner and one advanced question.
4. Questions must test working knowledge a developer gains from real use, not memorized trivia.
5. Give every question a short explanation of the correct answer.

Wrap your answer in a fenced code block tagged json, matching exactly this schema:

`, QuestionCount, ChoiceCount)

	b.WriteString("```json" + `
{
  "questions": [
    {
      "technology": "...",
      "difficulty": "beginner|intermediate|advanced",
      "questionText": "...",
      "choices": [
        {"text": "...", "isCorrect": true},
        {"text": "...", "isCorrect": false},
        {"text": "...", "isCorrect": false},
        {"text": "...", "isCorrect": false}
      ],
      "explanation": "..."
    }
  ]
}
` + "```" + `

Output nothing outside the fenced block.`)

	return b.String()
}
