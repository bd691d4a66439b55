package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/domain/types"
	"github.com/medassist-lab/medassist/pkg/usecase"
)

// mockLLM is a test double for interfaces.LLMService
type mockLLM struct {
	completeFn     func(ctx context.Context, messages []model.ChatMessage) (string, error)
	completeJSONFn func(ctx context.Context, messages []model.ChatMessage) (string, error)
	completeCalls  int
	jsonCalls      int
}

func (m *mockLLM) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	m.completeCalls++
	if m.completeFn != nil {
		return m.completeFn(ctx, messages)
	}
	return "mock reply", nil
}

func (m *mockLLM) CompleteJSON(ctx context.Context, messages []model.ChatMessage) (string, error) {
	m.jsonCalls++
	if m.completeJSONFn != nil {
		return m.completeJSONFn(ctx, messages)
	}
	return "{}", nil
}

func (m *mockLLM) Embed(ctx context.Context, text string) ([]float64, error) {
	return []float64{1, 0}, nil
}

// mockRetriever is a test double for interfaces.ContextRetriever
type mockRetriever struct {
	searchFn    func(ctx context.Context, query string) (string, error)
	searchCalls int
}

func (m *mockRetriever) Search(ctx context.Context, query string) (string, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return "retrieved context", nil
}

func intPtr(v int) *int { return &v }

func completeProfile() model.UserProfile {
	return model.UserProfile{
		FirstName:     "Dana",
		LastName:      "Levi",
		IDNumber:      "123456789",
		Gender:        "female",
		Age:           intPtr(30),
		HMO:           "מכבי",
		HMOCardNumber: "987654321",
		InsuranceTier: "זהב",
	}
}

func TestChat_Collection(t *testing.T) {
	ctx := context.Background()

	t.Run("extracted fields are merged and phase stays until complete", func(t *testing.T) {
		llm := &mockLLM{
			completeFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return "Nice to meet you! What is your last name?", nil
			},
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return `{"first_name": "Dana"}`, nil
			},
		}
		retriever := &mockRetriever{}
		uc := usecase.New(llm, retriever)

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "My name is Dana",
			Language: types.LanguageEnglish,
		})

		gt.Value(t, resp.Reply).Equal("Nice to meet you! What is your last name?")
		gt.Value(t, resp.UpdatedUserProfile.FirstName).Equal("Dana")
		gt.Value(t, resp.NextPhase).Equal(types.PhaseCollectingInfo)
		gt.Value(t, retriever.searchCalls).Equal(0)
	})

	t.Run("earlier values win over re-extracted ones", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return `{"first_name": "Maya"}`, nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:     "Actually call me Maya",
			Language:    types.LanguageEnglish,
			UserProfile: model.UserProfile{FirstName: "Dana"},
		})

		gt.Value(t, resp.UpdatedUserProfile.FirstName).Equal("Dana")
	})

	t.Run("final field completes the profile and advances the phase", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return `{"insurance_tier": "זהב"}`, nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		partial := completeProfile()
		partial.InsuranceTier = ""

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:     "אני בביטוח זהב",
			Language:    types.LanguageHebrew,
			UserProfile: partial,
		})

		gt.Value(t, resp.UpdatedUserProfile.InsuranceTier).Equal("זהב")
		gt.Value(t, resp.NextPhase).Equal(types.PhaseQA)
	})

	t.Run("invalid extracted values are dropped silently", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return `{"id_number": "12345", "age": 150, "favorite_color": "blue", "last_name": "Levi"}`, nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "my id is 12345, I'm 150 years old, last name Levi",
			Language: types.LanguageEnglish,
		})

		gt.Value(t, resp.UpdatedUserProfile.IDNumber).Equal("")
		gt.Value(t, resp.UpdatedUserProfile.Age == nil).Equal(true)
		gt.Value(t, resp.UpdatedUserProfile.LastName).Equal("Levi")
	})

	t.Run("unparsable extraction output extracts nothing", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return "I could not find any fields, sorry!", nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "hello",
			Language: types.LanguageEnglish,
		})

		gt.Value(t, resp.UpdatedUserProfile).Equal(model.UserProfile{})
		gt.Value(t, resp.NextPhase).Equal(types.PhaseCollectingInfo)
	})

	t.Run("alias tables normalize fund and tier spellings", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return `{"hmo": "Maccabi", "insurance_tier": "gold"}`, nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{},
			usecase.WithFundAliases(map[string]string{"Maccabi": "מכבי"}),
			usecase.WithTierAliases(map[string]string{"gold": "זהב"}),
		)

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "I'm with Maccabi on the gold plan",
			Language: types.LanguageEnglish,
		})

		gt.Value(t, resp.UpdatedUserProfile.HMO).Equal("מכבי")
		gt.Value(t, resp.UpdatedUserProfile.InsuranceTier).Equal("זהב")
	})
}

func TestChat_QA(t *testing.T) {
	ctx := context.Background()

	t.Run("complete profile routes to retrieval, no extraction", func(t *testing.T) {
		var qaMessages []model.ChatMessage
		llm := &mockLLM{
			completeFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				qaMessages = messages
				return "Gold tier covers 80% of dental treatments.", nil
			},
		}
		retriever := &mockRetriever{
			searchFn: func(ctx context.Context, query string) (string, error) {
				gt.Value(t, query).Equal("What dental services are covered?")
				return "dental coverage details", nil
			},
		}
		uc := usecase.New(llm, retriever)

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:     "What dental services are covered?",
			Language:    types.LanguageEnglish,
			UserProfile: completeProfile(),
		})

		gt.Value(t, resp.Reply).Equal("Gold tier covers 80% of dental treatments.")
		gt.Value(t, resp.UpdatedUserProfile).Equal(completeProfile())
		gt.Value(t, resp.NextPhase).Equal(types.PhaseQA)
		gt.Value(t, retriever.searchCalls).Equal(1)
		gt.Value(t, llm.jsonCalls).Equal(0)

		// system prompt carries the user's fund, tier and retrieved text
		gt.Value(t, qaMessages[0].Role).Equal(types.RoleSystem)
		gt.Value(t, strings.Contains(qaMessages[0].Content, "<hmo>מכבי</hmo>")).Equal(true)
		gt.Value(t, strings.Contains(qaMessages[0].Content, "<tier>זהב</tier>")).Equal(true)
		gt.Value(t, strings.Contains(qaMessages[0].Content, "dental coverage details")).Equal(true)
	})

	t.Run("history is forwarded between system prompt and new message", func(t *testing.T) {
		var captured []model.ChatMessage
		llm := &mockLLM{
			completeFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				captured = messages
				return "ok", nil
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		history := []model.ChatMessage{
			{Role: types.RoleUser, Content: "what about optometry?"},
			{Role: types.RoleAssistant, Content: "optometry is covered at 50%"},
		}
		uc.Chat(ctx, &model.ChatRequest{
			Message:             "and dental?",
			Language:            types.LanguageEnglish,
			UserProfile:         completeProfile(),
			ConversationHistory: history,
		})

		gt.Array(t, captured).Length(4)
		gt.Value(t, captured[1]).Equal(history[0])
		gt.Value(t, captured[2]).Equal(history[1])
		gt.Value(t, captured[3].Content).Equal("and dental?")
	})
}

func TestChat_Degradation(t *testing.T) {
	ctx := context.Background()

	t.Run("completion failure yields apology with untouched profile", func(t *testing.T) {
		llm := &mockLLM{
			completeFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return "", goerr.New("model unavailable")
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		profile := model.UserProfile{FirstName: "Dana"}
		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:     "hello",
			Language:    types.LanguageEnglish,
			UserProfile: profile,
		})

		gt.Value(t, resp.Reply).Equal("An error occurred. Please try again later.")
		gt.Value(t, resp.UpdatedUserProfile).Equal(profile)
		gt.Value(t, resp.NextPhase).Equal(types.PhaseCollectingInfo)
	})

	t.Run("apology follows the request language", func(t *testing.T) {
		llm := &mockLLM{
			completeFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return "", goerr.New("model unavailable")
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "שלום",
			Language: types.LanguageHebrew,
		})

		gt.Value(t, resp.Reply).Equal("אירעה שגיאה במערכת. אנא נסה שנית מאוחר יותר.")
	})

	t.Run("extraction failure degrades the whole turn", func(t *testing.T) {
		llm := &mockLLM{
			completeJSONFn: func(ctx context.Context, messages []model.ChatMessage) (string, error) {
				return "", goerr.New("model unavailable")
			},
		}
		uc := usecase.New(llm, &mockRetriever{})

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:  "My name is Dana",
			Language: types.LanguageEnglish,
		})

		gt.Value(t, resp.Reply).Equal("An error occurred. Please try again later.")
		gt.Value(t, resp.UpdatedUserProfile.FirstName).Equal("")
	})

	t.Run("retrieval failure in QA keeps the phase at qa", func(t *testing.T) {
		retriever := &mockRetriever{
			searchFn: func(ctx context.Context, query string) (string, error) {
				return "", goerr.New("embedding service down")
			},
		}
		uc := usecase.New(&mockLLM{}, retriever)

		resp := uc.Chat(ctx, &model.ChatRequest{
			Message:     "What is covered?",
			Language:    types.LanguageEnglish,
			UserProfile: completeProfile(),
		})

		gt.Value(t, resp.Reply).Equal("An error occurred. Please try again later.")
		gt.Value(t, resp.NextPhase).Equal(types.PhaseQA)
	})
}
