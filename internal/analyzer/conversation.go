package analyzer

import (
	"github.com/jonathan/resume-analyzer/internal/advice"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// NewConversation starts a conversation about an analysis result, seeded with the welcome message.
func NewConversation(result *types.AnalysisResult) types.Conversation {
	return types.Conversation{
		Resume:         result.Resume,
		JobDescription: result.JobDescription,
		Requirements:   result.Requirements,
		Messages: []types.ChatMessage{
			{Role: types.RoleAssistant, Content: advice.WelcomeMessage},
		},
	}
}

// Ask answers message within conv and returns the reply together with a new conversation
// that has both turns appended. conv itself is left untouched.
func Ask(conv types.Conversation, message string) (string, types.Conversation) {
	reply := Chat(message, conv.Resume, conv.JobDescription, conv.Requirements)

	next := conv
	next.Messages = make([]types.ChatMessage, 0, len(conv.Messages)+2)
	next.Messages = append(next.Messages, conv.Messages...)
	next.Messages = append(next.Messages,
		types.ChatMessage{Role: types.RoleUser, Content: message},
		types.ChatMessage{Role: types.RoleAssistant, Content: reply},
	)
	return reply, next
}
