package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/types"
)

// ChatMessage is a single turn in the conversation history
type ChatMessage struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}

// ChatRequest is the payload of POST /chat. The conversation history is
// supplied in full by the caller on every request; each call must be
// reproducible purely from this payload.
type ChatRequest struct {
	Message             string         `json:"message"`
	Language            types.Language `json:"language"`
	UserProfile         UserProfile    `json:"user_profile"`
	ConversationHistory []ChatMessage  `json:"conversation_history"`
}

// Validate checks the request has a well-formed shape
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return goerr.New("message is required")
	}
	if !r.Language.IsValid() {
		return goerr.New("unknown language", goerr.V("language", r.Language))
	}
	for i, msg := range r.ConversationHistory {
		if !msg.Role.IsValid() {
			return goerr.New("unknown message role",
				goerr.V("index", i),
				goerr.V("role", msg.Role))
		}
	}
	return nil
}

// ChatResponse is the payload returned by POST /chat
type ChatResponse struct {
	Reply              string      `json:"reply"`
	UpdatedUserProfile UserProfile `json:"updated_user_profile"`
	NextPhase          types.Phase `json:"next_phase"`
}
