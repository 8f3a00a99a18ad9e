package service

import (
	"strings"

	"study-buddy-be/internal/constant"
	"study-buddy-be/pkg/llm"
	"study-buddy-be/pkg/store"
)

// buildGroundedPrompt frames the user's question with the retrieved
// document chunks so the model answers from the corpus.
func buildGroundedPrompt(chunks []string, question string) string {
	if len(chunks) == 0 {
		return question
	}

	var sb strings.Builder
	sb.WriteString("Context from uploaded documents:\n")
	for _, chunk := range chunks {
		sb.WriteString("---\n")
		sb.WriteString(strings.TrimSpace(chunk))
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}

// buildChatHistory converts the memory buffer into the provider-agnostic
// message list, prefixed with the system prompt. The latest user turn is
// replaced by the grounded prompt.
func buildChatHistory(buffer *store.MemoryBuffer, groundedPrompt string) []llm.Message {
	history := make([]llm.Message, 0, len(buffer.Turns)+2)
	history = append(history, llm.Message{Role: "system", Content: constant.ChatSystemPrompt})

	for _, turn := range buffer.Turns {
		role := "user"
		if turn.Role == constant.ChatMessageRoleBot {
			role = "assistant"
		}
		history = append(history, llm.Message{Role: role, Content: turn.Content})
	}

	history = append(history, llm.Message{Role: "user", Content: groundedPrompt})
	return history
}
