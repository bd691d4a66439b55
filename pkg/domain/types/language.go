package types

// Language is the language requested by the client for assistant replies
type Language string

const (
	LanguageHebrew  Language = "he"
	LanguageEnglish Language = "en"
)

// IsValid checks if the language is a known value
func (l Language) IsValid() bool {
	switch l {
	case LanguageHebrew, LanguageEnglish:
		return true
	default:
		return false
	}
}

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}
