package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const indentUnit = "  "

// Tree lists everything under root as an indented tree, one entry per
// line, directories suffixed with "/". Entries at each level are sorted
// byte-wise; directories are descended depth-first in that order. There
// are no exclusion filters: whatever the filesystem exposes is listed.
func Tree(root string) (string, error) {
	var sb strings.Builder
	if err := writeLevel(&sb, root, 0); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func writeLevel(sb *strings.Builder, dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	prefix := strings.Repeat(indentUnit, depth)
	for _, e := range entries {
		sb.WriteString(prefix)
		sb.WriteString(e.Name())
		if e.IsDir() {
			sb.WriteString("/")
		}
		sb.WriteString("\n")
		if e.IsDir() {
			if err := writeLevel(sb, filepath.Join(dir, e.Name()), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
