package model

// Field-level format checks shared by the conversational extraction
// filter and the form validation report. Both pipelines check the same
// identifiers, so the rules live here once.

// IsDigits reports whether s is non-empty and consists of digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidIDNumber reports whether s is a well-formed Israeli national ID:
// exactly 9 digits.
func ValidIDNumber(s string) bool {
	return len(s) == 9 && IsDigits(s)
}

// ValidAge reports whether age is in the accepted range
func ValidAge(age int) bool {
	return age >= 0 && age <= 120
}

// ValidPhoneNumber reports whether s looks like a phone number
// (7 to 15 digits). Used only for soft warnings, never enforcement.
func ValidPhoneNumber(s string) bool {
	return len(s) >= 7 && len(s) <= 15 && IsDigits(s)
}

// knownGenderValues are the values the form validator does not warn about
var knownGenderValues = []string{"זכר", "נקבה", "male", "female", "M", "F"}

// KnownGenderValue reports whether s is one of the expected gender values
func KnownGenderValue(s string) bool {
	for _, v := range knownGenderValues {
		if s == v {
			return true
		}
	}
	return false
}
