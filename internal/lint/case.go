package lint

import (
	"strings"
	"unicode"

	"github.com/janvolk/commitlint/internal/rule"
)

// caseCheckers maps each supported style name to its matcher. Every
// style declared in the rule package must have an entry here; the
// registry rejects unknown style names before evaluation starts.
var caseCheckers = map[rule.CaseStyle]func(string) bool{
	rule.LowerCase:    isLowerCase,
	rule.UpperCase:    isUpperCase,
	rule.CamelCase:    isCamelCase,
	rule.PascalCase:   isPascalCase,
	rule.KebabCase:    isKebabCase,
	rule.SnakeCase:    isSnakeCase,
	rule.SentenceCase: isSentenceCase,
	rule.StartCase:    isStartCase,
}

// matchesCase reports whether s matches any of the given styles.
// The empty string matches none; emptiness rules own that case.
func matchesCase(s string, styles []rule.CaseStyle) bool {
	if s == "" {
		return false
	}
	for _, style := range styles {
		if check, ok := caseCheckers[style]; ok && check(s) {
			return true
		}
	}
	return false
}

func isLowerCase(s string) bool {
	return s == strings.ToLower(s)
}

func isUpperCase(s string) bool {
	return s == strings.ToUpper(s)
}

func hasSeparator(s string) bool {
	return strings.ContainsAny(s, " -_")
}

func isCamelCase(s string) bool {
	return !hasSeparator(s) && startsLower(s)
}

// isPascalCase matches when the first character is uppercase and the
// string contains no separator characters.
func isPascalCase(s string) bool {
	return !hasSeparator(s) && startsUpper(s)
}

func isKebabCase(s string) bool {
	return isLowerCase(s) && !strings.ContainsAny(s, " _")
}

func isSnakeCase(s string) bool {
	return isLowerCase(s) && !strings.ContainsAny(s, " -")
}

// isSentenceCase matches when the first letter is uppercase, like the
// start of a prose sentence.
func isSentenceCase(s string) bool {
	return startsUpper(s)
}

// isStartCase matches when every word starts with an uppercase letter.
func isStartCase(s string) bool {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !startsUpper(w) {
			return false
		}
	}
	return true
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
