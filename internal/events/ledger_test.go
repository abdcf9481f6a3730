package events

import (
	"testing"

	"github.com/hayashik/onramp/internal/llm"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger_AppendAndList(t *testing.T) {
	l := openTestLedger(t)
	ctx := t.Context()

	records := []llm.RequestRecord{
		{Provider: "anthropic", Model: "m1", Purpose: "curriculum", Chunks: 12, OutputChars: 800, LatencyMs: 1500, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "quiz", Success: false, ErrorMessage: "rate limited"},
	}
	for _, rec := range records {
		if err := l.AppendLLMRequest(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := l.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "quiz" || got[0].Success {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Provider != "anthropic" || got[1].Chunks != 12 {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestLedger_Get(t *testing.T) {
	l := openTestLedger(t)
	ctx := t.Context()

	if err := l.AppendLLMRequest(ctx, llm.RequestRecord{Provider: "mock", Model: "mock", Purpose: "quiz", Success: true}); err != nil {
		t.Fatal(err)
	}

	ev, err := l.Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ev == nil || ev.Provider != "mock" {
		t.Fatalf("event = %+v", ev)
	}

	missing, err := l.Get(ctx, 99)
	if err != nil || missing != nil {
		t.Errorf("missing id = (%+v, %v), want (nil, nil)", missing, err)
	}
}
