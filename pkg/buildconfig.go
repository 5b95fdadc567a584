package pluginversion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Occurrence is one literal appearance of a version string in a file.
type Occurrence struct {
	Line   int    // 1-based line number.
	Column int    // 1-based byte offset within the line.
	Text   string // The full line, without its newline.
}

// FindVersionOccurrences lists every literal occurrence of version in the
// file at path. Matches are not anchored to any context, so a version that
// also appears in an unrelated dependency coordinate is reported too.
func FindVersionOccurrences(path, version string) ([]Occurrence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if version == "" {
		return nil, nil
	}

	var found []Occurrence
	for i, line := range strings.Split(string(data), "\n") {
		offset := 0
		for {
			idx := strings.Index(line[offset:], version)
			if idx < 0 {
				break
			}
			found = append(found, Occurrence{
				Line:   i + 1,
				Column: offset + idx + 1,
				Text:   strings.TrimSuffix(line, "\r"),
			})
			offset += idx + len(version)
		}
	}
	return found, nil
}

// UpdateBuildConfig replaces every literal occurrence of oldVersion with
// newVersion in the build configuration at path. The current and the new
// content are both printed to w before anything is written. The file is
// only rewritten when the content actually changes; the returned bool
// reports whether it was.
func UpdateBuildConfig(w io.Writer, path, oldVersion, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading build config %s: %w", path, err)
	}
	content := string(data)
	name := filepath.Base(path)

	fmt.Fprintf(w, "Current %s content:\n", name)
	fmt.Fprintln(w, content)

	newContent := content
	if oldVersion != "" {
		newContent = strings.ReplaceAll(content, oldVersion, newVersion)
	}

	fmt.Fprintf(w, "New %s content:\n", name)
	fmt.Fprintln(w, newContent)

	if newContent == content {
		fmt.Fprintf(w, "No changes made to %s\n", path)
		return false, nil
	}

	if err := writeInPlace(path, []byte(newContent)); err != nil {
		return false, fmt.Errorf("writing build config %s: %w", path, err)
	}
	fmt.Fprintf(w, "Updated %s\n", path)
	return true, nil
}
