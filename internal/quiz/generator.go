package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hayashik/onramp/internal/llm"
	"github.com/hayashik/onramp/internal/techstack"
)

// Phase labels a progress event.
type Phase string

const (
	PhaseDetecting  Phase = "detecting"
	PhaseGenerating Phase = "generating"
	PhaseCompleted  Phase = "completed"
	PhaseError      Phase = "error"
)

// Event is one unit of the generation pipeline's streamed status
// sequence. The terminal successful event carries the parsed quiz; the
// terminal error event carries Err.
type Event struct {
	Phase   Phase
	Percent int
	Message string
	// Quiz is set only on the terminal completed event.
	Quiz *Quiz
	// Err is set only on the terminal error event.
	Err error
}

// streamCharsPerPercent paces the 40→90 window against response length.
const streamCharsPerPercent = 80

// Generator orchestrates one quiz generation run.
type Generator struct {
	client   llm.Client
	detector *techstack.Detector
	store    *Store

	// now is injectable for tests.
	now func() time.Time
}

// NewGenerator wires a Generator for the given workspace root.
func NewGenerator(workspaceRoot string, client llm.Client) *Generator {
	return &Generator{
		client:   client,
		detector: techstack.New(workspaceRoot),
		store:    NewStore(workspaceRoot),
		now:      time.Now,
	}
}

// Generate runs the pipeline and returns its progress event sequence.
// technologies overrides stack detection when non-empty; with an empty
// override the workspace is scanned, and a scan that finds nothing is a
// terminal error before any model call. The channel is closed after the
// terminal event; cancel ctx to abandon a run — no state is written
// after cancellation and the pipeline never retries internally.
func (g *Generator) Generate(ctx context.Context, technologies []string) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		g.run(ctx, events, technologies)
	}()
	return events
}

func (g *Generator) run(ctx context.Context, events chan<- Event, technologies []string) {
	emit := func(ev Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	fail := func(err error) {
		emit(Event{Phase: PhaseError, Percent: 100, Message: err.Error(), Err: err})
	}

	if !emit(Event{Phase: PhaseDetecting, Percent: 20, Message: "Detecting technology stack"}) {
		return
	}
	if len(technologies) == 0 {
		technologies = g.detector.Detect()
	}
	if len(technologies) == 0 {
		fail(errors.New("no technologies detected in this workspace: pass them explicitly with --tech"))
		return
	}

	if !emit(Event{Phase: PhaseGenerating, Percent: 40, Message: "Generating quiz"}) {
		return
	}

	text, ok := g.streamResponse(ctx, events, technologies)
	if !ok {
		return
	}

	if !emit(Event{Phase: PhaseGenerating, Percent: 95, Message: "Parsing generated quiz"}) {
		return
	}
	doc, err := Parse(text, technologies, g.now())
	if err != nil {
		fail(fmt.Errorf("parse model response: %w", err))
		return
	}

	if ctx.Err() != nil {
		return
	}
	// Regeneration cascade: answers and result for the old quiz cleared.
	if err := g.store.Delete(); err != nil {
		fail(fmt.Errorf("clear previous quiz: %w", err))
		return
	}
	if err := g.store.Save(doc); err != nil {
		fail(fmt.Errorf("save quiz: %w", err))
		return
	}

	emit(Event{Phase: PhaseCompleted, Percent: 100, Message: "Quiz ready", Quiz: doc})
}

// streamResponse consumes the LLM stream, emitting progress between 40
// and 90 percent as the response grows. Returns ok=false after emitting
// a terminal error event (or on cancellation).
func (g *Generator) streamResponse(ctx context.Context, events chan<- Event, technologies []string) (string, bool) {
	ctx = llm.WithPurpose(ctx, "quiz")

	stream, err := g.client.CreateMessage(ctx, systemPrompt, []llm.Message{
		{Role: llm.RoleUser, Content: buildUserMessage(technologies)},
	})
	if err != nil {
		g.failOn(ctx, events, fmt.Errorf("start generation: %w", err))
		return "", false
	}
	defer stream.Close()

	var text []byte
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.failOn(ctx, events, fmt.Errorf("stream response: %w", err))
			return "", false
		}
		text = append(text, chunk.Text...)

		percent := 40 + len(text)/streamCharsPerPercent
		if percent > 90 {
			percent = 90
		}
		select {
		case events <- Event{Phase: PhaseGenerating, Percent: percent, Message: "Generating quiz"}:
		case <-ctx.Done():
			return "", false
		}
	}
	return string(text), true
}

func (g *Generator) failOn(ctx context.Context, events chan<- Event, err error) {
	select {
	case events <- Event{Phase: PhaseError, Percent: 100, Message: err.Error(), Err: err}:
	case <-ctx.Done():
	}
}
