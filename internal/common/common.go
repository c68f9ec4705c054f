package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Duplicates returns the elements that occur more than once in s, in order
// of their second occurrence. Each duplicate is reported once.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var dups []E

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}

	return dups
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
