package llm

import (
	"context"
	"testing"
)

type captureRecorder struct {
	records []RequestRecord
}

func (c *captureRecorder) AppendLLMRequest(_ context.Context, rec RequestRecord) error {
	c.records = append(c.records, rec)
	return nil
}

func TestLogging_RecordsStreamCompletion(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockClient(MockResponse{Chunks: []string{"foo", "bar"}})
	client := WithLogging(mock, rec)

	ctx := WithPurpose(t.Context(), "curriculum")
	stream, err := client.CreateMessage(ctx, "system text", []Message{{Role: RoleUser, Content: "prompt"}})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if got := drain(t, stream); got != "foobar" {
		t.Fatalf("streamed text = %q", got)
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	r := rec.records[0]
	if !r.Success {
		t.Error("record not marked successful")
	}
	if r.Purpose != "curriculum" {
		t.Errorf("Purpose = %q, want curriculum", r.Purpose)
	}
	if r.Chunks != 2 {
		t.Errorf("Chunks = %d, want 2", r.Chunks)
	}
	if r.ResponseBody != "foobar" {
		t.Errorf("ResponseBody = %q", r.ResponseBody)
	}
	if r.OutputChars != 6 {
		t.Errorf("OutputChars = %d, want 6", r.OutputChars)
	}
}

func TestLogging_RecordsFailedCall(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockClient(MockResponse{Err: &ErrProviderUnavailable{}})
	client := WithLogging(mock, rec)

	if _, err := client.CreateMessage(t.Context(), "", nil); err == nil {
		t.Fatal("expected error")
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	if rec.records[0].Success {
		t.Error("failed call recorded as success")
	}
	if rec.records[0].ErrorMessage == "" {
		t.Error("missing error message")
	}
}

func TestLogging_RecordsAbandonedStream(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockClient(MockResponse{Chunks: []string{"partial", "rest"}})
	client := WithLogging(mock, rec)

	stream, err := client.CreateMessage(t.Context(), "", nil)
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	r := rec.records[0]
	if r.Success {
		t.Error("abandoned stream recorded as success")
	}
	if r.ResponseBody != "partial" {
		t.Errorf("ResponseBody = %q, want partial", r.ResponseBody)
	}
}
