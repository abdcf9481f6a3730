package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// RequestRecord captures one CreateMessage call for the event ledger.
type RequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	Chunks       int
	OutputChars  int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRecorder persists LLM request records. Implemented by the sqlite
// event ledger; a nil-safe NopRecorder is used when no ledger is open.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, rec RequestRecord) error
}

// NopRecorder discards all records.
type NopRecorder struct{}

func (NopRecorder) AppendLLMRequest(context.Context, RequestRecord) error { return nil }

// LoggingClient is a decorator that records every LLM request as a ledger
// row. For streams, the row is written when the stream ends (EOF, error,
// or Close before exhaustion).
type LoggingClient struct {
	inner    Client
	recorder EventRecorder
}

// WithLogging wraps a Client with event logging.
func WithLogging(c Client, recorder EventRecorder) Client {
	return &LoggingClient{inner: c, recorder: recorder}
}

func (l *LoggingClient) CreateMessage(ctx context.Context, system string, msgs []Message) (Stream, error) {
	start := time.Now()

	rec := RequestRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		RequestBody: serializeRequest(system, msgs),
	}

	stream, err := l.inner.CreateMessage(ctx, system, msgs)
	if err != nil {
		rec.LatencyMs = time.Since(start).Milliseconds()
		rec.ErrorMessage = err.Error()
		l.append(ctx, rec)
		return nil, err
	}

	return &loggedStream{
		inner:    stream,
		client:   l,
		ctx:      ctx,
		start:    start,
		rec:      rec,
		response: &strings.Builder{},
	}, nil
}

func (l *LoggingClient) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingClient) append(ctx context.Context, rec RequestRecord) {
	// Log the event but don't fail the request if logging fails.
	if err := l.recorder.AppendLLMRequest(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

type loggedStream struct {
	inner    Stream
	client   *LoggingClient
	ctx      context.Context
	start    time.Time
	rec      RequestRecord
	response *strings.Builder
	done     bool
}

func (s *loggedStream) Recv() (Chunk, error) {
	chunk, err := s.inner.Recv()
	if err == nil {
		s.rec.Chunks++
		s.response.WriteString(chunk.Text)
		return chunk, nil
	}

	if !s.done {
		s.done = true
		s.rec.LatencyMs = time.Since(s.start).Milliseconds()
		s.rec.ResponseBody = s.response.String()
		s.rec.OutputChars = s.response.Len()
		s.rec.Success = errors.Is(err, io.EOF)
		if !s.rec.Success {
			s.rec.ErrorMessage = err.Error()
		}
		s.client.append(s.ctx, s.rec)
	}
	return Chunk{}, err
}

func (s *loggedStream) Close() error {
	if !s.done {
		// Abandoned before exhaustion; record what was consumed.
		s.done = true
		s.rec.LatencyMs = time.Since(s.start).Milliseconds()
		s.rec.ResponseBody = s.response.String()
		s.rec.OutputChars = s.response.Len()
		s.rec.Success = false
		s.rec.ErrorMessage = "stream abandoned"
		s.client.append(s.ctx, s.rec)
	}
	return s.inner.Close()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(system string, msgs []Message) string {
	var b strings.Builder

	if system != "" {
		b.WriteString("[system]\n")
		b.WriteString(system)
		b.WriteString("\n\n")
	}

	for _, m := range msgs {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
