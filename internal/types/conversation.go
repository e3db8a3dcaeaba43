package types

// ChatRole identifies who wrote a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Conversation is the chat context for one analyzed résumé. It is owned by the caller
// and passed explicitly to every chat call.
type Conversation struct {
	Resume         ResumeRecord    `json:"resume"`
	JobDescription string          `json:"job_description"`
	Requirements   JobRequirements `json:"requirements"`
	Messages       []ChatMessage   `json:"messages"`
}

// ChatRequest is the body of a chat call over HTTP.
type ChatRequest struct {
	Message      string       `json:"message" validate:"required,max=2000"`
	Conversation Conversation `json:"conversation"`
}

// Validate checks the message and the requirements carried by the conversation, then
// canonicalizes the requirements' education level.
func (r *ChatRequest) Validate() error {
	if err := newValidator().Struct(r); err != nil {
		return err
	}
	return r.Conversation.Requirements.Canonicalize()
}

// ChatResponse is the reply to a ChatRequest.
type ChatResponse struct {
	Response     string       `json:"response"`
	Conversation Conversation `json:"conversation"`
}
