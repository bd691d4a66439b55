package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/domain/types"
	"github.com/medassist-lab/medassist/pkg/utils/errutil"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
)

// Chat handles one conversational turn. The phase is recomputed from
// the supplied profile on every call; nothing is persisted server-side.
// External call failures never escape: the response degrades to a fixed
// apology in the request language, the profile is returned unmodified,
// and the phase is recomputed from that unmodified profile so the
// client neither regresses nor advances.
func (uc *UseCases) Chat(ctx context.Context, req *model.ChatRequest) *model.ChatResponse {
	logging.From(ctx).Info("incoming chat request",
		"phase", req.UserProfile.Phase(),
		"history_len", len(req.ConversationHistory),
	)

	var resp *model.ChatResponse
	var err error
	switch req.UserProfile.Phase() {
	case types.PhaseQA:
		resp, err = uc.answerQuestion(ctx, req)
	default:
		resp, err = uc.collectInfo(ctx, req)
	}

	if err != nil {
		_ = errutil.Handle(ctx, err, "chat request degraded to apology reply")
		return &model.ChatResponse{
			Reply:              apologyReply(req.Language),
			UpdatedUserProfile: req.UserProfile,
			NextPhase:          req.UserProfile.Phase(),
		}
	}

	return resp
}

// collectInfo runs the information gathering phase: converse, extract
// candidate fields from the latest user message only, merge them under
// the first-value-wins policy, and recompute the phase.
func (uc *UseCases) collectInfo(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	messages := composeMessages(collectionPrompt(req.Language), req)

	reply, err := uc.llm.Complete(ctx, messages)
	if err != nil {
		return nil, goerr.Wrap(err, "completion call failed in collection phase")
	}

	candidates, err := uc.extractProfile(ctx, req.Message, req.Language)
	if err != nil {
		return nil, err
	}

	merged := req.UserProfile.Merge(candidates)
	next := merged.Phase()
	if next == types.PhaseQA {
		logging.From(ctx).Info("user profile completed, transitioning to QA phase")
	}

	return &model.ChatResponse{
		Reply:              reply,
		UpdatedUserProfile: merged,
		NextPhase:          next,
	}, nil
}

// answerQuestion runs the QA phase: retrieve grounding context for the
// latest message, combine it with the user's fund and tier, and ask the
// model to answer from that context only. No extraction happens here
// and the phase stays qa.
func (uc *UseCases) answerQuestion(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	retrieved, err := uc.retriever.Search(ctx, req.Message)
	if err != nil {
		return nil, goerr.Wrap(err, "knowledge retrieval failed")
	}

	grounding := groundingBlock(req.UserProfile, retrieved)
	messages := composeMessages(qaPrompt(req.Language, grounding), req)

	reply, err := uc.llm.Complete(ctx, messages)
	if err != nil {
		return nil, goerr.Wrap(err, "completion call failed in QA phase")
	}

	return &model.ChatResponse{
		Reply:              reply,
		UpdatedUserProfile: req.UserProfile,
		NextPhase:          types.PhaseQA,
	}, nil
}

// composeMessages builds the completion input: system instruction
// first, then the full client-supplied history, then the new message
func composeMessages(systemPrompt string, req *model.ChatRequest) []model.ChatMessage {
	messages := make([]model.ChatMessage, 0, len(req.ConversationHistory)+2)
	messages = append(messages, model.ChatMessage{Role: types.RoleSystem, Content: systemPrompt})
	messages = append(messages, req.ConversationHistory...)
	messages = append(messages, model.ChatMessage{Role: types.RoleUser, Content: req.Message})
	return messages
}

// groundingBlock tags the user's fund membership and the retrieved text
// so the model can scope its answer to both
func groundingBlock(profile model.UserProfile, retrieved string) string {
	return fmt.Sprintf(
		"<user_context><hmo>%s</hmo><tier>%s</tier></user_context>\n\n"+
			"<retrieved_knowledge>\n%s\n</retrieved_knowledge>",
		profile.HMO, profile.InsuranceTier, retrieved,
	)
}
