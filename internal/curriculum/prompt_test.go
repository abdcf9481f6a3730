package curriculum

import (
	"strings"
	"testing"

	"github.com/hayashik/onramp/internal/profile"
)

func TestBuildUserMessage_ProfileAndTechnologies(t *testing.T) {
	prof := &profile.Profile{
		ExperienceLevel: profile.Experience1To3Years,
		PrimaryRole:     profile.RoleBackend,
		Technologies: map[string]profile.Level{
			"Python": profile.LevelPractical,
		},
	}

	msg := buildUserMessage("tree goes here", []string{"Python", "Docker"}, prof)

	for _, want := range []string{
		"1-3 years of professional experience",
		"backend developer",
		"- Python\n",
		"- Docker\n",
		"tree goes here",
		"```json",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessage_Deterministic(t *testing.T) {
	prof := &profile.Profile{
		ExperienceLevel: profile.Experience3To5Years,
		PrimaryRole:     profile.RoleFullstack,
		Technologies: map[string]profile.Level{
			"Go":         profile.LevelExpert,
			"React":      profile.LevelBasic,
			"Kubernetes": profile.LevelNoExperience,
		},
	}

	first := buildUserMessage("s", []string{"Go"}, prof)
	for range 20 {
		if got := buildUserMessage("s", []string{"Go"}, prof); got != first {
			t.Fatal("prompt text not deterministic across calls")
		}
	}
}
