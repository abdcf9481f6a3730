package llm

import "context"

// Client is the core abstraction for LLM interaction.
// Consumers call CreateMessage with a system prompt and message history
// and receive a lazy stream of text chunks.
type Client interface {
	// CreateMessage starts a streaming generation. The returned Stream
	// yields incremental text chunks; Recv returns io.EOF when the model
	// has finished. The caller must Close the stream.
	CreateMessage(ctx context.Context, system string, msgs []Message) (Stream, error)

	// ModelID returns the model identifier this client is configured to use.
	ModelID() string
}

// Stream is a pull-based sequence of response chunks.
type Stream interface {
	// Recv returns the next chunk. It returns io.EOF once the stream is
	// exhausted, or a provider error if the stream failed mid-flight.
	Recv() (Chunk, error)

	// Close releases the underlying connection. Safe to call after EOF.
	Close() error
}

// Chunk is a single increment of streamed model output.
type Chunk struct {
	// Text is the incremental text carried by this chunk. May be empty
	// for bookkeeping events the provider emits between content deltas.
	Text string
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM. The pipeline
// instructs the model (in the prompt) to emit a fenced JSON block; the
// extracted block is validated against this schema before normalization.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "learning-curriculum".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}
