package usecase

import (
	"context"
	"encoding/json"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/domain/types"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
)

// extractProfile invokes the structured extraction contract on a single
// user message and returns the sanitized candidate fields as a sparse
// profile. An unparsable or non-object result is treated as "no fields
// extracted", not as an error; only a failed LLM call is returned to
// the caller.
func (uc *UseCases) extractProfile(ctx context.Context, message string, lang types.Language) (model.UserProfile, error) {
	messages := []model.ChatMessage{
		{Role: types.RoleSystem, Content: extractionPrompt(lang)},
		{Role: types.RoleUser, Content: "User message:\n" + message},
	}

	raw, err := uc.llm.CompleteJSON(ctx, messages)
	if err != nil {
		return model.UserProfile{}, goerr.Wrap(err, "extraction call failed")
	}

	candidates := uc.sanitizeCandidates(ctx, raw)

	return candidates, nil
}

// sanitizeCandidates parses the extraction output and applies the
// allow-list and per-field validators. Keys outside the eight profile
// fields, empty values, malformed ID numbers and out-of-range ages are
// dropped silently: a rejected field is a data-quality filter, never a
// request failure.
func (uc *UseCases) sanitizeCandidates(ctx context.Context, raw string) model.UserProfile {
	var extracted map[string]any
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		logging.From(ctx).Warn("extraction output is not a JSON object", "raw", raw)
		return model.UserProfile{}
	}

	var candidates model.UserProfile
	for field, value := range extracted {
		switch field {
		case model.FieldFirstName:
			candidates.FirstName = stringValue(value)
		case model.FieldLastName:
			candidates.LastName = stringValue(value)
		case model.FieldIDNumber:
			if s := stringValue(value); model.ValidIDNumber(s) {
				candidates.IDNumber = s
			}
		case model.FieldGender:
			candidates.Gender = stringValue(value)
		case model.FieldAge:
			if age, ok := intValue(value); ok && model.ValidAge(age) {
				candidates.Age = &age
			}
		case model.FieldHMO:
			candidates.HMO = normalize(stringValue(value), uc.funds)
		case model.FieldHMOCardNumber:
			candidates.HMOCardNumber = stringValue(value)
		case model.FieldInsuranceTier:
			candidates.InsuranceTier = normalize(stringValue(value), uc.tiers)
		}
	}

	return candidates
}

// stringValue narrows a decoded JSON value to a string; any other type
// (including null) yields the empty string and is treated as unset
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue narrows a decoded JSON value to an integer. JSON numbers
// decode as float64; a fractional age is rejected rather than rounded.
func intValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// normalize maps a value through an alias table if one is configured.
// Unknown values pass through unchanged; bilingual free-form values are
// allowed at this layer.
func normalize(value string, aliases map[string]string) string {
	if canonical, ok := aliases[value]; ok {
		return canonical
	}
	return value
}
