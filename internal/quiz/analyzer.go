package quiz

import (
	"strings"
	"time"

	"github.com/hayashik/onramp/internal/profile"
)

// Proficiency ratio thresholds per technology.
const (
	expertThreshold    = 0.9
	practicalThreshold = 0.6
	basicThreshold     = 0.3
)

// Overall score thresholds.
const (
	advancedThreshold     = 0.7
	intermediateThreshold = 0.4
)

// Analyze scores recorded answers against a quiz and derives the result
// document. Per-technology proficiency is the correct ratio over that
// technology's questions; unanswered questions count as wrong. Overall
// score is the correct ratio over all recorded answers.
func Analyze(q *Quiz, answers []Answer, completedAt time.Time) *Result {
	byQuestion := make(map[string]Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	techTotal := make(map[string]int)
	techCorrect := make(map[string]int)
	correct := 0
	for _, question := range q.Questions {
		techTotal[question.Technology]++
		a, ok := byQuestion[question.ID]
		if !ok || !a.IsCorrect {
			continue
		}
		techCorrect[question.Technology]++
		correct++
	}

	levels := make(map[string]profile.Level, len(techTotal))
	for tech, total := range techTotal {
		levels[tech] = proficiencyLevel(float64(techCorrect[tech]) / float64(total))
	}

	score := 0.0
	if len(answers) > 0 {
		score = float64(correct) / float64(len(answers))
	}

	return &Result{
		QuizID:            q.ID,
		Answers:           answers,
		ProficiencyLevels: levels,
		OverallLevel:      overallLevel(score),
		OverallScore:      score,
		CompletedAt:       completedAt,
	}
}

func proficiencyLevel(ratio float64) profile.Level {
	switch {
	case ratio >= expertThreshold:
		return profile.LevelExpert
	case ratio >= practicalThreshold:
		return profile.LevelPractical
	case ratio >= basicThreshold:
		return profile.LevelBasic
	}
	return profile.LevelNoExperience
}

func overallLevel(score float64) Difficulty {
	switch {
	case score >= advancedThreshold:
		return DifficultyAdvanced
	case score >= intermediateThreshold:
		return DifficultyIntermediate
	}
	return DifficultyBeginner
}

// Role inference keyword tables, matched case-insensitively against the
// technologies a result covers.
var (
	frontendKeywords = []string{"react", "vue", "angular", "svelte", "next", "nuxt", "css", "html", "tailwind", "javascript", "typescript", "frontend"}
	backendKeywords  = []string{"express", "django", "flask", "rails", "spring", "laravel", "gin", "fastapi", "node", "go", "python", "java", "ruby", "php", "postgresql", "mysql", "mongodb", "redis", "graphql"}
	mobileKeywords   = []string{"react native", "flutter", "swift", "kotlin", "android", "ios", "dart"}
	devopsKeywords   = []string{"docker", "kubernetes", "terraform", "ansible", "jenkins", "aws", "gcp", "azure", "prometheus"}
)

// SuggestedProfile derives a starter profile from a quiz result, so a
// developer who begins with the diagnostic quiz never has to fill the
// profile in by hand. The suggestion is a draft the user can edit.
func SuggestedProfile(r *Result, now time.Time) *profile.Profile {
	return &profile.Profile{
		ExperienceLevel: suggestedExperience(r.OverallLevel),
		PrimaryRole:     inferRole(r.ProficiencyLevels),
		Technologies:    r.ProficiencyLevels,
		UpdatedAt:       now,
	}
}

func suggestedExperience(level Difficulty) profile.ExperienceLevel {
	switch level {
	case DifficultyAdvanced:
		return profile.Experience3To5Years
	case DifficultyIntermediate:
		return profile.Experience1To3Years
	}
	return profile.ExperienceLessThan1Year
}

// inferRole buckets the result's technologies by keyword and picks the
// role: frontend plus backend evidence means fullstack, otherwise the
// first matching bucket in frontend, backend, mobile, devops order.
func inferRole(levels map[string]profile.Level) profile.Role {
	var frontend, backend, mobile, devops bool
	for tech := range levels {
		lower := strings.ToLower(tech)
		frontend = frontend || matchesAny(lower, frontendKeywords)
		backend = backend || matchesAny(lower, backendKeywords)
		mobile = mobile || matchesAny(lower, mobileKeywords)
		devops = devops || matchesAny(lower, devopsKeywords)
	}

	switch {
	case frontend && backend:
		return profile.RoleFullstack
	case frontend:
		return profile.RoleFrontend
	case backend:
		return profile.RoleBackend
	case mobile:
		return profile.RoleMobile
	case devops:
		return profile.RoleDevOps
	}
	return profile.RoleOther
}

func matchesAny(tech string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(tech, kw) {
			return true
		}
	}
	return false
}
