// Package profile holds the user proficiency profile and its fixed
// natural-language descriptor tables used for prompt construction.
package profile

import "time"

// ExperienceLevel buckets overall professional experience.
type ExperienceLevel string

const (
	ExperienceLessThan1Year ExperienceLevel = "less_than_1_year"
	Experience1To3Years     ExperienceLevel = "1_to_3_years"
	Experience3To5Years     ExperienceLevel = "3_to_5_years"
	ExperienceMoreThan5     ExperienceLevel = "more_than_5_years"
)

// Role is the user's primary development role.
type Role string

const (
	RoleFrontend  Role = "frontend"
	RoleBackend   Role = "backend"
	RoleFullstack Role = "fullstack"
	RoleMobile    Role = "mobile"
	RoleDevOps    Role = "devops"
	RoleOther     Role = "other"
)

// Level is a per-technology proficiency bucket.
type Level string

const (
	LevelNoExperience Level = "no_experience"
	LevelBasic        Level = "basic"
	LevelPractical    Level = "practical"
	LevelExpert       Level = "expert"
)

// LearningStyle shapes how generated tasks are framed.
type LearningStyle string

const (
	StyleHandsOn       LearningStyle = "hands_on"
	StyleTheoryFirst   LearningStyle = "theory_first"
	StyleExampleDriven LearningStyle = "example_driven"
)

// Profile is the persisted user proficiency record.
type Profile struct {
	ExperienceLevel ExperienceLevel  `json:"experienceLevel"`
	PrimaryRole     Role             `json:"primaryRole"`
	Technologies    map[string]Level `json:"technologies"`
	LearningGoal    string           `json:"learningGoal,omitempty"`
	LearningStyle   LearningStyle    `json:"learningStyle,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// experienceDescriptors translates experience levels for prompts.
var experienceDescriptors = map[ExperienceLevel]string{
	ExperienceLessThan1Year: "less than 1 year of professional experience",
	Experience1To3Years:     "1-3 years of professional experience",
	Experience3To5Years:     "3-5 years of professional experience",
	ExperienceMoreThan5:     "more than 5 years of professional experience",
}

// roleDescriptors translates roles for prompts.
var roleDescriptors = map[Role]string{
	RoleFrontend:  "frontend developer",
	RoleBackend:   "backend developer",
	RoleFullstack: "fullstack developer",
	RoleMobile:    "mobile developer",
	RoleDevOps:    "DevOps engineer",
	RoleOther:     "software developer",
}

// levelDescriptors translates proficiency buckets for prompts.
var levelDescriptors = map[Level]string{
	LevelNoExperience: "no experience",
	LevelBasic:        "basic knowledge",
	LevelPractical:    "practical working knowledge",
	LevelExpert:       "expert-level knowledge",
}

// styleDescriptors translates learning styles for prompts.
var styleDescriptors = map[LearningStyle]string{
	StyleHandsOn:       "learns best by writing code hands-on",
	StyleTheoryFirst:   "prefers understanding concepts before coding",
	StyleExampleDriven: "learns best from concrete examples",
}

// ExperienceDescriptor returns the prompt text for an experience level.
func ExperienceDescriptor(e ExperienceLevel) string {
	if d, ok := experienceDescriptors[e]; ok {
		return d
	}
	return "unknown experience level"
}

// RoleDescriptor returns the prompt text for a role.
func RoleDescriptor(r Role) string {
	if d, ok := roleDescriptors[r]; ok {
		return d
	}
	return roleDescriptors[RoleOther]
}

// LevelDescriptor returns the prompt text for a proficiency bucket.
func LevelDescriptor(l Level) string {
	if d, ok := levelDescriptors[l]; ok {
		return d
	}
	return levelDescriptors[LevelNoExperience]
}

// StyleDescriptor returns the prompt text for a learning style.
func StyleDescriptor(s LearningStyle) string {
	if d, ok := styleDescriptors[s]; ok {
		return d
	}
	return ""
}
