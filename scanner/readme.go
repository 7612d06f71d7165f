package scanner

import (
	"os"
	"path/filepath"
)

// readmeCandidates is checked in order; only the folder root is searched.
var readmeCandidates = []string{"README.md", "readme.md", "README", "readme"}

// Readme returns the contents of the first README candidate found under
// root, or "" when none exists. Absence is not an error.
func Readme(root string) string {
	for _, name := range readmeCandidates {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err == nil {
			return string(data)
		}
	}
	return ""
}
