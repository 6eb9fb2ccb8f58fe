package schema

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// initialisms are snake_case segments rendered in upper case, following Go
// naming conventions (ID, URL, JSON).
var initialisms = map[string]bool{
	"ap":   true,
	"api":  true,
	"ar":   true,
	"gl":   true,
	"http": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"osha": true,
	"sms":  true,
	"sql":  true,
	"url":  true,
	"uuid": true,
}

// ToPascalCase converts snake_case to PascalCase, upper-casing initialisms:
// "project_manager_id" -> "ProjectManagerID". Any character that cannot
// appear in a Go identifier separates words, and names that would not start
// with an upper-case letter get an X prefix: "2fa-required" -> "X2faRequired".
func ToPascalCase(s string) string {
	name := pascalWords(s)
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		name = "X" + name
	}
	return name
}

// pascalWords joins the words of s in PascalCase without the identifier
// prefix; enum constants append it to their type name.
func pascalWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, word := range words {
		lower := strings.ToLower(word)
		if initialisms[lower] {
			words[i] = strings.ToUpper(word)
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		words[i] = string(unicode.ToUpper(r)) + lower[size:]
	}
	return strings.Join(words, "")
}

// EntityName is the singular PascalCase name of a table's Row type:
// "gl_journal_entries" -> "GLJournalEntry".
func EntityName(table string) string {
	parts := strings.Split(table, "_")
	parts[len(parts)-1] = singularize(parts[len(parts)-1])
	return ToPascalCase(strings.Join(parts, "_"))
}

// ArgFieldName is the Go field for a function argument; the conventional
// p_ prefix is dropped: "p_company_id" -> "CompanyID".
func ArgFieldName(arg string) string {
	return ToPascalCase(strings.TrimPrefix(arg, "p_"))
}

// singularize converts a plural word to singular (basic implementation)
func singularize(word string) string {
	word = strings.TrimSpace(word)

	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
