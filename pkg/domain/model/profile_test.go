package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/domain/types"
)

func intPtr(n int) *int { return &n }

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

func TestUserProfile_Merge(t *testing.T) {
	t.Run("adopts candidate values for unset fields", func(t *testing.T) {
		p := model.UserProfile{}
		merged := p.Merge(model.UserProfile{FirstName: "Dana", Age: intPtr(30)})

		gt.Value(t, merged.FirstName).Equal("Dana")
		gt.Value(t, *merged.Age).Equal(30)
		gt.Value(t, merged.LastName).Equal("")
	})

	t.Run("never overwrites an existing value", func(t *testing.T) {
		p := model.UserProfile{FirstName: "Dana", Age: intPtr(30)}
		merged := p.Merge(model.UserProfile{FirstName: "Noa", Age: intPtr(99)})

		gt.Value(t, merged.FirstName).Equal("Dana")
		gt.Value(t, *merged.Age).Equal(30)
	})

	t.Run("is idempotent", func(t *testing.T) {
		p := model.UserProfile{LastName: "Levi"}
		c := model.UserProfile{FirstName: "Dana", LastName: "Cohen", IDNumber: "123456789"}

		once := p.Merge(c)
		twice := once.Merge(c)

		gt.Value(t, twice).Equal(once)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		p := model.UserProfile{}
		_ = p.Merge(model.UserProfile{FirstName: "Dana"})

		gt.Value(t, p.FirstName).Equal("")
	})
}

func TestUserProfile_IsComplete(t *testing.T) {
	t.Run("empty profile is incomplete", func(t *testing.T) {
		p := model.UserProfile{}
		gt.Value(t, p.IsComplete()).Equal(false)
	})

	t.Run("all eight fields make it complete", func(t *testing.T) {
		gt.Value(t, completeProfile().IsComplete()).Equal(true)
	})

	t.Run("any single missing field makes it incomplete", func(t *testing.T) {
		p := completeProfile()
		p.InsuranceTier = ""
		gt.Value(t, p.IsComplete()).Equal(false)

		p = completeProfile()
		p.Age = nil
		gt.Value(t, p.IsComplete()).Equal(false)
	})

	t.Run("age zero counts as collected", func(t *testing.T) {
		p := completeProfile()
		p.Age = intPtr(0)
		gt.Value(t, p.IsComplete()).Equal(true)
	})

	t.Run("completeness is monotonic under merge", func(t *testing.T) {
		p := completeProfile()
		gt.Value(t, p.IsComplete()).Equal(true)

		merged := p.Merge(model.UserProfile{FirstName: "Other", HMO: "כללית"})
		gt.Value(t, merged.IsComplete()).Equal(true)
	})
}

func TestUserProfile_Phase(t *testing.T) {
	gt.Value(t, model.UserProfile{}.Phase()).Equal(types.PhaseCollectingInfo)
	gt.Value(t, completeProfile().Phase()).Equal(types.PhaseQA)
}
