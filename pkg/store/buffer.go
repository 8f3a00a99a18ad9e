package store

// Turn is a single conversational turn held in the memory buffer.
type Turn struct {
	Role    string `json:"role"` // "user" | "bot"
	Content string `json:"content"`
}

// MemoryBuffer is the bounded representation of prior conversational
// turns supplied to the LLM as context. It is a cache over the
// persisted message list, never the source of truth.
type MemoryBuffer struct {
	SessionKey string `json:"session_key"`
	Turns      []Turn `json:"turns"`
	MaxTurns   int    `json:"max_turns"`
}

func NewMemoryBuffer(sessionKey string, maxTurns int) *MemoryBuffer {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &MemoryBuffer{
		SessionKey: sessionKey,
		MaxTurns:   maxTurns,
	}
}

// Append adds a turn and drops the oldest entries beyond the bound.
func (b *MemoryBuffer) Append(role, content string) {
	b.Turns = append(b.Turns, Turn{Role: role, Content: content})
	if len(b.Turns) > b.MaxTurns {
		b.Turns = b.Turns[len(b.Turns)-b.MaxTurns:]
	}
}
