package curriculum

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/hayashik/onramp/internal/llm"
)

// DefaultEstimate is assigned when the model omits a task estimate.
const DefaultEstimate = "30 minutes"

// fencedJSON matches the first ```json fenced block in the response.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")

// ExtractFencedJSON returns the contents of the first fenced JSON block.
// Absence of a matching block is a hard parse failure.
func ExtractFencedJSON(text string) (json.RawMessage, error) {
	m := fencedJSON.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("response contains no fenced JSON block")
	}
	return json.RawMessage(m[1]), nil
}

// curriculumOutput mirrors the JSON shape requested from the model.
type curriculumOutput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Chapters    []chapterOutput `json:"chapters"`
}

type chapterOutput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tasks       []taskOutput `json:"tasks"`
}

type taskOutput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TargetFiles   []string `json:"targetFiles"`
	EstimatedTime string   `json:"estimatedTime"`
	Prerequisites []string `json:"prerequisites"`
}

// Parse runs the two-stage pipeline on raw model output: extract the
// fenced block and validate it strictly, then normalize the result into
// a well-formed document. projectSummary is recorded on the document.
func Parse(text, projectSummary string, now time.Time) (*Curriculum, error) {
	raw, err := ExtractFencedJSON(text)
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateAgainst(Schema, raw); err != nil {
		return nil, err
	}

	var out curriculumOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse curriculum JSON: %w", err)
	}

	return normalize(&out, projectSummary, now), nil
}

// normalize builds the persisted document: every chapter and task gets a
// freshly generated unique id regardless of what the model emitted,
// chapter order is a dense 0-based sequence, and missing optional fields
// take their documented defaults.
func normalize(out *curriculumOutput, projectSummary string, now time.Time) *Curriculum {
	doc := &Curriculum{
		ID:             uuid.NewString(),
		Title:          out.Title,
		Description:    out.Description,
		ProjectSummary: projectSummary,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for i, ch := range out.Chapters {
		chapter := Chapter{
			ID:          uuid.NewString(),
			Title:       ch.Title,
			Description: ch.Description,
			Order:       i,
		}
		for _, task := range ch.Tasks {
			chapter.Tasks = append(chapter.Tasks, normalizeTask(task))
		}
		doc.Chapters = append(doc.Chapters, chapter)
	}

	return doc
}

func normalizeTask(out taskOutput) Task {
	task := Task{
		ID:            uuid.NewString(),
		Title:         out.Title,
		Description:   out.Description,
		Status:        StatusNotStarted,
		TargetFiles:   out.TargetFiles,
		EstimatedTime: out.EstimatedTime,
		Prerequisites: out.Prerequisites,
	}
	if task.EstimatedTime == "" {
		task.EstimatedTime = DefaultEstimate
	}
	if task.TargetFiles == nil {
		task.TargetFiles = []string{}
	}
	if task.Prerequisites == nil {
		task.Prerequisites = []string{}
	}
	return task
}
