package llm

import (
	"context"
	"io"
	"sync"
)

// MockCall records a single CreateMessage invocation.
type MockCall struct {
	System   string
	Messages []Message
}

// MockResponse is a canned streamed response for the MockClient.
// Chunks are yielded one Recv at a time; Err, when set, is returned
// instead of starting a stream.
type MockResponse struct {
	Chunks []string
	// StreamErr, when set, is returned by Recv after the chunks are
	// exhausted, simulating a mid-stream failure.
	StreamErr error
	Err       error
}

// MockClient is a deterministic Client for testing.
// It returns canned responses in FIFO order and records all requests.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// CreateMessage returns a stream over the next canned response, or
// ErrProviderUnavailable if the queue is empty.
func (m *MockClient) CreateMessage(_ context.Context, system string, msgs []Message) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{System: system, Messages: msgs})

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &mockStream{chunks: resp.Chunks, streamErr: resp.StreamErr}, nil
}

// ModelID returns "mock".
func (m *MockClient) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of CreateMessage calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

type mockStream struct {
	chunks    []string
	streamErr error
	pos       int
}

func (s *mockStream) Recv() (Chunk, error) {
	if s.pos >= len(s.chunks) {
		if s.streamErr != nil {
			return Chunk{}, s.streamErr
		}
		return Chunk{}, io.EOF
	}
	chunk := Chunk{Text: s.chunks[s.pos]}
	s.pos++
	return chunk, nil
}

func (s *mockStream) Close() error { return nil }

var _ Client = (*MockClient)(nil)
