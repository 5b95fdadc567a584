package pluginversion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

var (
	// ErrVersionNotFound is returned when the manifest has no <version> element.
	ErrVersionNotFound = errors.New("current version not found in plugin.xml")
	// ErrReleaseVersionNotFound is returned when the manifest has no
	// release-version attribute.
	ErrReleaseVersionNotFound = errors.New("current release-version not found in plugin.xml")
)

var (
	releaseDatePattern    = regexp.MustCompile(`release-date="(\d+)"`)
	releaseVersionPattern = regexp.MustCompile(`release-version="(\d+)"`)
	versionPattern        = regexp.MustCompile(`<version>([^<]+)</version>`)
)

// ReadCurrentVersion returns the text of the first <version> element in the
// manifest at path.
func ReadCurrentVersion(path string) (string, error) {
	return findInManifest(path, versionPattern, ErrVersionNotFound)
}

// ReadCurrentReleaseVersion returns the digits of the first
// release-version="..." attribute in the manifest at path.
func ReadCurrentReleaseVersion(path string) (string, error) {
	return findInManifest(path, releaseVersionPattern, ErrReleaseVersionNotFound)
}

func findInManifest(path string, re *regexp.Regexp, notFound error) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m := re.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%s: %w", path, notFound)
	}
	return string(m[1]), nil
}

// RenderManifest applies the release-date, release-version and version
// substitutions to content. Every match of each pattern is replaced; a
// pattern that does not occur leaves content untouched.
func RenderManifest(content, releaseDate, releaseVersion, version string) string {
	content = releaseDatePattern.ReplaceAllLiteralString(content, `release-date="`+releaseDate+`"`)
	content = releaseVersionPattern.ReplaceAllLiteralString(content, `release-version="`+releaseVersion+`"`)
	content = versionPattern.ReplaceAllLiteralString(content, "<version>"+version+"</version>")
	return content
}

// UpdateManifest rewrites the manifest at path with the given release date,
// release version and version, then reports the update on w.
func UpdateManifest(w io.Writer, path, releaseDate, releaseVersion, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	content := RenderManifest(string(data), releaseDate, releaseVersion, version)

	if err := writeInPlace(path, []byte(content)); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	fmt.Fprintf(w, "Updated %s\n", path)
	return nil
}

// writeInPlace overwrites path with data, keeping the file's permission bits.
func writeInPlace(path string, data []byte) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
