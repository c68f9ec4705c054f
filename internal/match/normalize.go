package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader normalizes a header name for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Drop diacritics ("Zużycie" -> "Zuzycie"; "ł" maps to "l").
// 3. Case-fold to lower.
// 4. Strip separators (_, -, ., spaces).
func NormalizeHeader(s string) string {
	tokens := tokenizeCamelCase(strings.TrimSpace(s))

	joined := foldDiacritics(strings.Join(tokens, ""))
	joined = strings.ToLower(joined)

	return stripSeparators(joined)
}

var strokeLetters = strings.NewReplacer("ł", "l", "Ł", "L")

// foldDiacritics removes combining marks after canonical decomposition.
// The stroke letters have no decomposition and are mapped explicitly.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strokeLetters.Replace(out)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "NrGazomierza" -> ["Nr", "Gazomierza"]
//   - "ZuzycieKWH" -> ["Zuzycie", "KWH"]
//   - "PODNumber" -> ["POD", "Number"]
//   - "Data_Odczytu" -> ["Data", "Odczytu"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	rs := []rune(s)
	for i := range rs {
		r := rs[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(rs, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(rs []rune, i int) bool {
	r := rs[i]
	prev := rs[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "nrGazomierza" -> split before 'G'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "PODNumber" -> "POD" + "Number", split before 'N'
	hasNextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
