package curriculum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hayashik/onramp/internal/analyzer"
	"github.com/hayashik/onramp/internal/llm"
	"github.com/hayashik/onramp/internal/profile"
	"github.com/hayashik/onramp/internal/techstack"
)

// Phase labels a progress event.
type Phase string

const (
	PhaseAnalyzing  Phase = "analyzing"
	PhaseGenerating Phase = "generating"
	PhaseCompleted  Phase = "completed"
	PhaseError      Phase = "error"
)

// Event is one unit of the generation pipeline's streamed status
// sequence. The terminal successful event carries the parsed document;
// the terminal error event carries Err.
type Event struct {
	Phase   Phase
	Percent int
	Message string
	// Curriculum is set only on the terminal completed event.
	Curriculum *Curriculum
	// Err is set only on the terminal error event.
	Err error
}

// streamCharsPerPercent paces the 50→90 window against response length.
const streamCharsPerPercent = 120

// Generator orchestrates one curriculum generation run.
type Generator struct {
	client   llm.Client
	analyzer *analyzer.Analyzer
	detector *techstack.Detector
	profiles *profile.Store
	store    *Store

	// now is injectable for tests.
	now func() time.Time
}

// NewGenerator wires a Generator for the given workspace root.
func NewGenerator(workspaceRoot string, client llm.Client) *Generator {
	return &Generator{
		client:   client,
		analyzer: analyzer.New(workspaceRoot, analyzer.DefaultConfig()),
		detector: techstack.New(workspaceRoot),
		profiles: profile.NewStore(workspaceRoot),
		store:    NewStore(workspaceRoot),
		now:      time.Now,
	}
}

// Generate runs the pipeline and returns its progress event sequence.
// The channel is closed after the terminal event. The run is
// single-threaded and cooperative: it suspends on every send, so the
// consumer paces the pipeline. Cancel ctx to abandon a run; no state is
// written after cancellation and the pipeline never retries internally.
func (g *Generator) Generate(ctx context.Context) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		g.run(ctx, events)
	}()
	return events
}

func (g *Generator) run(ctx context.Context, events chan<- Event) {
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

	if !emit(Event{Phase: PhaseAnalyzing, Percent: 10, Message: "Analyzing project structure"}) {
		return
	}
	analysis, err := g.analyzer.Analyze()
	if err != nil {
		fail(fmt.Errorf("analyze project: %w", err))
		return
	}
	summary := g.analyzer.Summary(analysis)

	if !emit(Event{Phase: PhaseAnalyzing, Percent: 30, Message: "Detecting technology stack"}) {
		return
	}
	technologies := g.detector.Detect()

	if !emit(Event{Phase: PhaseAnalyzing, Percent: 40, Message: "Loading user profile"}) {
		return
	}
	prof, ok := g.profiles.Load()
	if !ok {
		fail(errors.New("no user profile found: run `onramp profile init` or complete the diagnostic quiz first"))
		return
	}

	if !emit(Event{Phase: PhaseGenerating, Percent: 50, Message: "Generating curriculum"}) {
		return
	}

	text, ok := g.streamResponse(ctx, events, summary, technologies, prof)
	if !ok {
		return
	}

	if !emit(Event{Phase: PhaseGenerating, Percent: 95, Message: "Parsing generated curriculum"}) {
		return
	}
	doc, err := Parse(text, summary, g.now())
	if err != nil {
		fail(fmt.Errorf("parse model response: %w", err))
		return
	}

	if ctx.Err() != nil {
		return
	}
	// Regeneration cascade: stale statistics cleared with the old document.
	if err := g.store.Delete(); err != nil {
		fail(fmt.Errorf("clear previous curriculum: %w", err))
		return
	}
	if err := g.store.Save(doc); err != nil {
		fail(fmt.Errorf("save curriculum: %w", err))
		return
	}

	emit(Event{Phase: PhaseCompleted, Percent: 100, Message: "Curriculum ready", Curriculum: doc})
}

// streamResponse consumes the LLM stream, emitting progress between 50
// and 90 percent as the response grows. Returns ok=false after emitting
// a terminal error event (or on cancellation).
func (g *Generator) streamResponse(ctx context.Context, events chan<- Event, summary string, technologies []string, prof *profile.Profile) (string, bool) {
	ctx = llm.WithPurpose(ctx, "curriculum")

	stream, err := g.client.CreateMessage(ctx, systemPrompt, []llm.Message{
		{Role: llm.RoleUser, Content: buildUserMessage(summary, technologies, prof)},
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

		percent := 50 + len(text)/streamCharsPerPercent
		if percent > 90 {
			percent = 90
		}
		select {
		case events <- Event{Phase: PhaseGenerating, Percent: percent, Message: "Generating curriculum"}:
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
