package batch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Discover returns the regular files matching a filepath.Match pattern, in
// lexical order. The running executable and every path in exclude are left
// out, compared by file identity so relative paths and links still match.
func Discover(pattern string, exclude ...string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	if exe, err := os.Executable(); err == nil {
		exclude = append(exclude, exe)
	}

	var excluded []os.FileInfo

	for _, p := range exclude {
		if fi, err := os.Stat(p); err == nil {
			excluded = append(excluded, fi)
		}
	}

	var files []string

	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		if isExcluded(fi, excluded) {
			continue
		}

		files = append(files, m)
	}

	return files, nil
}

func isExcluded(fi os.FileInfo, excluded []os.FileInfo) bool {
	for _, ex := range excluded {
		if os.SameFile(fi, ex) {
			return true
		}
	}

	return false
}
