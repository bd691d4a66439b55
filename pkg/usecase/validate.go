package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/medassist-lab/medassist/pkg/domain/model"
)

// ValidateForm checks an extracted injury form against the expected
// shape and reports completeness, hard errors and soft warnings. The
// extracted data is never modified or auto-corrected; this is a batch
// reporting step, not part of the interactive dialogue.
func ValidateForm(raw []byte) *model.ValidationReport {
	report := &model.ValidationReport{
		IsValid:       true,
		Errors:        []string{},
		Warnings:      []string{},
		MissingFields: []string{},
	}

	// Structural validation: any field outside the schema or a leaf of
	// the wrong type is a hard error.
	var form model.InjuryForm
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		report.IsValid = false
		report.Errors = append(report.Errors, fmt.Sprintf("Schema validation failed: %s", err))
		return report
	}

	leaves := form.Leaves()
	filled := 0
	for _, leaf := range leaves {
		if isEmptyValue(leaf.Value) {
			report.MissingFields = append(report.MissingFields, leaf.Path)
		} else {
			filled++
		}
	}
	report.Completeness = round3(float64(filled) / float64(len(leaves)))

	report.Warnings = append(report.Warnings, fieldWarnings(&form)...)
	report.Warnings = append(report.Warnings, dateWarnings(form.DateOfBirth, "dateOfBirth")...)
	report.Warnings = append(report.Warnings, dateWarnings(form.DateOfInjury, "dateOfInjury")...)
	report.Warnings = append(report.Warnings, dateWarnings(form.FormFillingDate, "formFillingDate")...)
	report.Warnings = append(report.Warnings, dateWarnings(form.FormReceiptDateAtClinic, "formReceiptDateAtClinic")...)

	if len(report.Errors) > 0 {
		report.IsValid = false
	}

	return report
}

// fieldWarnings applies the soft format checks for identifier fields.
// These share the validators used by the conversational extraction
// filter, but here a mismatch only warns instead of dropping the value.
func fieldWarnings(form *model.InjuryForm) []string {
	var warnings []string

	if id := trimValue(form.IDNumber); id != "" {
		if !model.IsDigits(id) {
			warnings = append(warnings, "idNumber contains non-digit characters")
		} else if !model.ValidIDNumber(id) {
			warnings = append(warnings, fmt.Sprintf("idNumber length is %d (expected 9 digits)", len(id)))
		}
	}

	if gender := trimValue(form.Gender); gender != "" && !model.KnownGenderValue(gender) {
		warnings = append(warnings, fmt.Sprintf("gender value looks unusual: '%s'", gender))
	}

	if mobile := trimValue(form.MobilePhone); mobile != "" && !model.ValidPhoneNumber(mobile) {
		warnings = append(warnings, "mobilePhone format looks unusual (expected 7-15 digits)")
	}
	if landline := trimValue(form.LandlinePhone); landline != "" && !model.ValidPhoneNumber(landline) {
		warnings = append(warnings, "landlinePhone format looks unusual (expected 7-15 digits)")
	}

	return warnings
}

// dateWarnings validates one {day, month, year} structure. An entirely
// empty date is allowed; it is already counted by the completeness
// score. Values are only reported, never fixed.
func dateWarnings(d model.FormDate, field string) []string {
	day := trimValue(d.Day)
	month := trimValue(d.Month)
	year := trimValue(d.Year)

	if day == "" && month == "" && year == "" {
		return nil
	}

	var warnings []string
	if !(len(day) >= 1 && len(day) <= 2 && model.IsDigits(day)) {
		warnings = append(warnings, fmt.Sprintf("%s.day should be 1-2 digits or empty", field))
	}
	if !(len(month) >= 1 && len(month) <= 2 && model.IsDigits(month)) {
		warnings = append(warnings, fmt.Sprintf("%s.month should be 1-2 digits or empty", field))
	}
	if !(len(year) == 4 && model.IsDigits(year)) {
		warnings = append(warnings, fmt.Sprintf("%s.year should be 4 digits or empty", field))
	}

	if n, err := strconv.Atoi(day); err == nil && (n < 1 || n > 31) {
		warnings = append(warnings, fmt.Sprintf("%s.day out of range (1-31)", field))
	}
	if n, err := strconv.Atoi(month); err == nil && (n < 1 || n > 12) {
		warnings = append(warnings, fmt.Sprintf("%s.month out of range (1-12)", field))
	}

	return warnings
}

func isEmptyValue(s string) bool {
	return trimValue(s) == ""
}

// trimValue strips the whitespace noise OCR leaves around form values
func trimValue(s string) string {
	return strings.TrimSpace(s)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
