package quiz

import (
	"testing"
	"time"

	"github.com/hayashik/onramp/internal/profile"
)

var analyzeTime = time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)

// fiveQuestionQuiz returns a quiz with three Go and two Docker
// questions, correct answer A everywhere.
func fiveQuestionQuiz() *Quiz {
	q := &Quiz{ID: "quiz-1", TargetTechnologies: []string{"Go", "Docker"}}
	techs := []string{"Go", "Go", "Go", "Docker", "Docker"}
	for i, tech := range techs {
		q.Questions = append(q.Questions, Question{
			ID:             string(rune('a' + i)),
			QuestionNumber: i + 1,
			Technology:     tech,
			QuestionText:   "q",
			Choices: []Choice{
				{ID: "A", Text: "right", IsCorrect: true},
				{ID: "B", Text: "wrong"},
				{ID: "C", Text: "wrong"},
				{ID: "D", Text: "wrong"},
			},
		})
	}
	return q
}

func answerAll(q *Quiz, correct []bool) []Answer {
	answers := make([]Answer, len(q.Questions))
	for i, question := range q.Questions {
		choice := "A"
		if !correct[i] {
			choice = "B"
		}
		answers[i] = Answer{
			QuestionID:       question.ID,
			SelectedChoiceID: choice,
			IsCorrect:        correct[i],
		}
	}
	return answers
}

func TestAnalyze_OverallScore(t *testing.T) {
	quiz := fiveQuestionQuiz()
	answers := answerAll(quiz, []bool{true, true, false, true, false})

	r := Analyze(quiz, answers, analyzeTime)

	if r.OverallScore != 0.6 {
		t.Errorf("OverallScore = %v, want 0.6", r.OverallScore)
	}
	if r.OverallLevel != DifficultyIntermediate {
		t.Errorf("OverallLevel = %q, want intermediate", r.OverallLevel)
	}
	if r.QuizID != "quiz-1" || !r.CompletedAt.Equal(analyzeTime) {
		t.Errorf("result header = %+v", r)
	}
}

func TestAnalyze_PerTechnologyBuckets(t *testing.T) {
	quiz := fiveQuestionQuiz()
	// Go: 3/3 expert. Docker: 1/2 none-bucket boundary check below.
	answers := answerAll(quiz, []bool{true, true, true, true, false})

	r := Analyze(quiz, answers, analyzeTime)

	if got := r.ProficiencyLevels["Go"]; got != profile.LevelExpert {
		t.Errorf("Go level = %q, want expert", got)
	}
	// 0.5 sits between basic (0.3) and practical (0.6).
	if got := r.ProficiencyLevels["Docker"]; got != profile.LevelBasic {
		t.Errorf("Docker level = %q, want basic", got)
	}
}

func TestAnalyze_UnansweredCountsAsWrong(t *testing.T) {
	quiz := fiveQuestionQuiz()
	// Only the three Go questions answered, all correct.
	answers := answerAll(quiz, []bool{true, true, true, false, false})[:3]

	r := Analyze(quiz, answers, analyzeTime)

	if got := r.ProficiencyLevels["Docker"]; got != profile.LevelNoExperience {
		t.Errorf("Docker level = %q, want no_experience", got)
	}
	// Score is over recorded answers, all of which were correct.
	if r.OverallScore != 1.0 {
		t.Errorf("OverallScore = %v, want 1.0", r.OverallScore)
	}
}

func TestAnalyze_NoAnswers(t *testing.T) {
	r := Analyze(fiveQuestionQuiz(), nil, analyzeTime)

	if r.OverallScore != 0 || r.OverallLevel != DifficultyBeginner {
		t.Errorf("empty result = %+v", r)
	}
	for tech, level := range r.ProficiencyLevels {
		if level != profile.LevelNoExperience {
			t.Errorf("%s level = %q, want no_experience", tech, level)
		}
	}
}

func TestSuggestedProfile_Experience(t *testing.T) {
	cases := []struct {
		level Difficulty
		want  profile.ExperienceLevel
	}{
		{DifficultyBeginner, profile.ExperienceLessThan1Year},
		{DifficultyIntermediate, profile.Experience1To3Years},
		{DifficultyAdvanced, profile.Experience3To5Years},
	}
	for _, tc := range cases {
		r := &Result{OverallLevel: tc.level, ProficiencyLevels: map[string]profile.Level{}}
		if got := SuggestedProfile(r, analyzeTime).ExperienceLevel; got != tc.want {
			t.Errorf("%s: experience = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestInferRole(t *testing.T) {
	cases := []struct {
		name  string
		techs []string
		want  profile.Role
	}{
		{"frontend only", []string{"React", "CSS"}, profile.RoleFrontend},
		{"backend only", []string{"Django", "PostgreSQL"}, profile.RoleBackend},
		{"fullstack", []string{"React", "Express"}, profile.RoleFullstack},
		{"mobile", []string{"Flutter"}, profile.RoleMobile},
		{"devops", []string{"Kubernetes", "Terraform"}, profile.RoleDevOps},
		{"unknown", []string{"COBOL"}, profile.RoleOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			levels := make(map[string]profile.Level)
			for _, tech := range tc.techs {
				levels[tech] = profile.LevelPractical
			}
			if got := inferRole(levels); got != tc.want {
				t.Errorf("role = %q, want %q", got, tc.want)
			}
		})
	}
}
