package domain

import (
	"fmt"
	"strings"
)

// systemPrompt is the assistant persona sent with every completion request.
const systemPrompt = `You are an intelligent assistant for movies. You are designed to provide helpful answers to user questions about movies in your database.
- Only answer questions related to the information provided
- Provide at least 3 candidate movie answers in a list
- Be concise but friendly`

// buildMessages assembles the completion request in order: the system
// persona, prior conversation turns oldest first, the current user message,
// and a trailing system context block when documents were retrieved.
func buildMessages(history []Message, userMessage string, docs []RetrievedDocument) []Message {
	messages := make([]Message, 0, len(history)+3)

	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: RoleUser, Content: userMessage})

	if len(docs) > 0 {
		messages = append(messages, Message{Role: RoleSystem, Content: buildContext(docs)})
	}

	return messages
}

// buildContext concatenates retrieved document contents into a single
// context block.
func buildContext(docs []RetrievedDocument) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, fmt.Sprintf("Document (source: %s): %s", doc.Source, doc.Content))
	}

	return "Context:\n" + strings.Join(parts, "\n\n")
}
