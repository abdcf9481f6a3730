package curriculum

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hayashik/onramp/internal/profile"
)

const systemPrompt = `You are an experienced engineering mentor who designs onboarding curricula for developers joining unfamiliar codebases. You tailor chapter progression and task difficulty to the developer's background.`

// buildUserMessage renders the generation prompt. It is deterministic
// given its inputs: the same summary, technologies, and profile always
// produce the same prompt text.
func buildUserMessage(summary string, technologies []string, prof *profile.Profile) string {
	var b strings.Builder

	b.WriteString("# Project\n")
	b.WriteString(summary)

	b.WriteString("\n# Detected technologies\n")
	if len(technologies) == 0 {
		b.WriteString("(none detected)\n")
	}
	for _, tech := range technologies {
		fmt.Fprintf(&b, "- %s\n", tech)
	}

	b.WriteString("\n# Developer profile\n")
	fmt.Fprintf(&b, "- Experience: %s\n", profile.ExperienceDescriptor(prof.ExperienceLevel))
	fmt.Fprintf(&b, "- Role: %s\n", profile.RoleDescriptor(prof.PrimaryRole))
	for _, tech := range sortedKeys(prof.Technologies) {
		fmt.Fprintf(&b, "- %s: %s\n", tech, profile.LevelDescriptor(prof.Technologies[tech]))
	}
	if prof.LearningGoal != "" {
		fmt.Fprintf(&b, "- Goal: %s\n", prof.LearningGoal)
	}
	if d := profile.StyleDescriptor(prof.LearningStyle); d != "" {
		fmt.Fprintf(&b, "- Style: %s\n", d)
	}

	b.WriteString(`
# Instructions
Create an onboarding curriculum for this developer and this codebase:
1. 3-6 chapters, ordered from orientation to deep work. Each chapter needs 2-5 concrete tasks.
2. Every task must name the files to read or change in targetFiles (workspace-relative paths from the directory structure above).
3. Give each task an estimatedTime like "30 minutes" or "1 hour", scaled to the developer's experience.
4. Use prerequisites sparingly, referencing earlier task titles only when a hard dependency exists.
5. Match task depth to the profile: skip basics the developer already knows, explain what they don't.

Wrap your answer in a fenced code block tagged json, matching exactly this schema:

` + "```json" + `
{
  "title": "...",
  "description": "...",
  "chapters": [
    {
      "title": "...",
      "description": "...",
      "tasks": [
        {
          "title": "...",
          "description": "...",
          "targetFiles": ["..."],
          "estimatedTime": "30 minutes",
          "prerequisites": []
        }
      ]
    }
  ]
}
` + "```" + `

Output nothing outside the fenced block.`)

	return b.String()
}

func sortedKeys(m map[string]profile.Level) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic prompt text requires a stable iteration order.
	sort.Strings(keys)
	return keys
}
