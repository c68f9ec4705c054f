// Package match finds input headers whose names are close to a missing one.
//
// Key functions:
//   - NormalizeHeader: folds case, separators and diacritics
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders headers by similarity to a wanted name
//   - Suggest: returns the best header above MinScore
package match
