package model

import (
	"github.com/medassist-lab/medassist/pkg/domain/types"
)

// Profile field names as they appear in the HTTP payload and in the
// structured extraction output. Only these eight keys are recognized.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldIDNumber      = "id_number"
	FieldGender        = "gender"
	FieldAge           = "age"
	FieldHMO           = "hmo"
	FieldHMOCardNumber = "hmo_card_number"
	FieldInsuranceTier = "insurance_tier"
)

// ProfileFields lists the recognized profile field names in collection order
func ProfileFields() []string {
	return []string{
		FieldFirstName,
		FieldLastName,
		FieldIDNumber,
		FieldGender,
		FieldAge,
		FieldHMO,
		FieldHMOCardNumber,
		FieldInsuranceTier,
	}
}

// UserProfile holds the personal details gathered during the information
// collection phase. The engine holds no copy of it between requests; the
// client sends the current profile with every call and persists the
// updated profile returned in the response.
//
// Age is a pointer so that a stated age of 0 is distinguishable from an
// age that was never collected.
type UserProfile struct {
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	IDNumber      string `json:"id_number,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Age           *int   `json:"age,omitempty"`
	HMO           string `json:"hmo,omitempty"`
	HMOCardNumber string `json:"hmo_card_number,omitempty"`
	InsuranceTier string `json:"insurance_tier,omitempty"`
}

// Merge adopts candidate values for fields that are still unset and
// returns the merged profile. A field that already carries a value keeps
// it: the first value ever recorded wins and later candidates for the
// same field are dropped silently. Merge is idempotent and never clears
// a field, so a profile that became complete stays complete.
func (p UserProfile) Merge(c UserProfile) UserProfile {
	if p.FirstName == "" {
		p.FirstName = c.FirstName
	}
	if p.LastName == "" {
		p.LastName = c.LastName
	}
	if p.IDNumber == "" {
		p.IDNumber = c.IDNumber
	}
	if p.Gender == "" {
		p.Gender = c.Gender
	}
	if p.Age == nil {
		p.Age = c.Age
	}
	if p.HMO == "" {
		p.HMO = c.HMO
	}
	if p.HMOCardNumber == "" {
		p.HMOCardNumber = c.HMOCardNumber
	}
	if p.InsuranceTier == "" {
		p.InsuranceTier = c.InsuranceTier
	}
	return p
}

// IsComplete reports whether all eight fields carry a value. It is
// recomputed on every call and never cached.
func (p UserProfile) IsComplete() bool {
	return p.FirstName != "" &&
		p.LastName != "" &&
		p.IDNumber != "" &&
		p.Gender != "" &&
		p.Age != nil &&
		p.HMO != "" &&
		p.HMOCardNumber != "" &&
		p.InsuranceTier != ""
}

// Phase derives the conversation phase from profile completeness
func (p UserProfile) Phase() types.Phase {
	if p.IsComplete() {
		return types.PhaseQA
	}
	return types.PhaseCollectingInfo
}
