// Package pluginversion provides a library for bumping the version of an
// IntelliJ-style plugin project.
//
// It provides functionalities for:
//   - Reading the current version and release-version from the plugin manifest
//     (src/main/resources/META-INF/plugin.xml).
//   - Proposing the next version: the patch component of MAJOR.MINOR.PATCH, or the
//     minor component of MAJOR.MINOR, is incremented.
//   - Deriving the release-version from a version by joining its first two
//     components ("3.4.1" becomes "34").
//   - Rewriting the manifest's release-date, release-version and version fields.
//   - Replacing every literal occurrence of the old version in build.gradle.
//
// The library backs the pluginversion command-line tool and can be driven
// programmatically by supplying the version and release date up front.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "github.com/gbti/pluginversion/pkg"
//	)
//
//	func main() {
//	    meta, err := pluginversion.Run(pluginversion.Options{
//	        ProjectDir:  ".",
//	        NewVersion:  "3.5.0",
//	        ReleaseDate: "20240701",
//	    })
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s to %s", meta.OldVersion, meta.NewVersion)
//	}
//
// Build configuration updates are plain substring replacements: any text in
// build.gradle equal to the old version is rewritten, including occurrences
// unrelated to the plugin's own version.
package pluginversion
