package utils

import "strings"

// IsSupportedLanguage reports whether the judge backend knows the language
func IsSupportedLanguage(language string) bool {
	switch strings.ToLower(language) {
	case "c", "cpp", "c++", "java", "python", "python3",
		"javascript", "js", "csharp", "c#", "go", "rust", "php", "ruby":
		return true
	default:
		return false
	}
}

// LanguageID maps a language name to its Judge0 language id.
// Unknown languages default to Python.
func LanguageID(language string) int {
	switch strings.ToLower(language) {
	case "c":
		return 50
	case "cpp", "c++":
		return 54
	case "java":
		return 62
	case "python", "python3":
		return 71
	case "javascript", "js":
		return 63
	case "csharp", "c#":
		return 51
	case "go":
		return 60
	case "rust":
		return 73
	case "php":
		return 68
	case "ruby":
		return 72
	default:
		return 71
	}
}
